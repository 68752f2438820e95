package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gen-obras/internal/llm"
	"gen-obras/internal/middleware"
	"gen-obras/internal/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

//
// BUDGET FORM
//

// budgetRow is one grid row exactly as typed.
type budgetRow struct {
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
}

func (r budgetRow) blank() bool {
	return r.Description == "" && r.Quantity == "" && r.Unit == "" && r.UnitPrice == ""
}

type budgetForm struct {
	Client  string
	Project string
	Address string
	Date    string
	Rows    []budgetRow
}

func (h *Handler) ShowNewBudget(c *gin.Context) {
	form := budgetForm{
		Date: time.Now().Format(dateLayout),
		Rows: []budgetRow{{}},
	}
	renderBudgetForm(c, http.StatusOK, form, "")
}

// CreateBudget handles the grid actions (add row, remove row) and the final
// save, which stores the prospect and asks the assistant for a schedule.
func (h *Handler) CreateBudget(c *gin.Context) {
	form := readBudgetForm(c)

	if v := c.PostForm("remove_row"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 && i < len(form.Rows) {
			form.Rows = append(form.Rows[:i], form.Rows[i+1:]...)
		}
		renderBudgetForm(c, http.StatusOK, form, "")
		return
	}
	if c.PostForm("action") == "add_row" {
		form.Rows = append(form.Rows, budgetRow{})
		renderBudgetForm(c, http.StatusOK, form, "")
		return
	}

	items, err := parseRows(form.Rows)
	if err != nil {
		renderBudgetForm(c, http.StatusBadRequest, form, err.Error())
		return
	}

	date := time.Now()
	if form.Date != "" {
		date, err = time.Parse(dateLayout, form.Date)
		if err != nil {
			renderBudgetForm(c, http.StatusBadRequest, form, "Invalid date")
			return
		}
	}

	ws := middleware.CurrentWorkspace(c)
	p := ws.AddProspect(models.Prospect{
		Client:  form.Client,
		Project: form.Project,
		Address: form.Address,
		Date:    date,
	}, items)
	log.Printf("prospect %s saved: %d items, total %.2f", p.ID, len(items), p.Total)

	// the schedule is best effort; the prospect is already stored
	tasks, err := h.ai.GenerateSchedule(c.Request.Context(), p.Project, items)
	if err != nil {
		log.Printf("schedule generation for %s failed: %v", p.ID, err)
		addFlash(c, flashError, "AI error: "+llm.Summary(err))
	} else if len(tasks) > 0 {
		_ = ws.SetSchedule(p.ID, tasks)
	}

	addFlash(c, flashSuccess, fmt.Sprintf("Budget saved! Schedule generated with %d steps.", len(tasks)))
	c.Redirect(http.StatusFound, "/budgets/new")
}

func readBudgetForm(c *gin.Context) budgetForm {
	form := budgetForm{
		Client:  strings.TrimSpace(c.PostForm("client")),
		Project: strings.TrimSpace(c.PostForm("project")),
		Address: strings.TrimSpace(c.PostForm("address")),
		Date:    strings.TrimSpace(c.PostForm("date")),
	}

	desc := c.PostFormArray("description")
	qty := c.PostFormArray("quantity")
	unit := c.PostFormArray("unit")
	price := c.PostFormArray("unit_price")

	n := max(len(desc), len(qty), len(unit), len(price))
	for i := 0; i < n; i++ {
		form.Rows = append(form.Rows, budgetRow{
			Description: strings.TrimSpace(at(desc, i)),
			Quantity:    strings.TrimSpace(at(qty, i)),
			Unit:        strings.TrimSpace(at(unit, i)),
			UnitPrice:   strings.TrimSpace(at(price, i)),
		})
	}
	return form
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

// parseRows converts the grid into line items. Fully blank rows are skipped;
// any other quantity or price that is not a number rejects the whole grid.
func parseRows(rows []budgetRow) ([]models.LineItem, error) {
	items := []models.LineItem{}
	for i, r := range rows {
		if r.blank() {
			continue
		}
		qty, err := parseNumber(r.Quantity)
		if err != nil {
			return nil, fmt.Errorf("Row %d: quantity %q is not a number", i+1, r.Quantity)
		}
		price, err := parseNumber(r.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("Row %d: unit price %q is not a number", i+1, r.UnitPrice)
		}
		items = append(items, models.LineItem{
			Description: r.Description,
			Quantity:    qty,
			Unit:        r.Unit,
			UnitPrice:   price,
		})
	}
	return items, nil
}

// parseNumber accepts "1234.5" and, when no dot is present, "1234,5".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func renderBudgetForm(c *gin.Context, status int, form budgetForm, msg string) {
	render(c, status, "budget_new.html", gin.H{
		"Page":  "budget",
		"form":  form,
		"error": msg,
	})
}
