package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer executes page templates inside the shared layout. Each page is
// parsed once, together with the layout, at construction time.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

var funcs = template.FuncMap{
	"statusLabel": func(s domain.ServiceStatus) string { return s.Label() },
	"roleLabel":   roleLabel,
	"money":       money,
	"date":        formatDate,
	"dateInput":   dateInput,
	"statuses":    func() []domain.ServiceStatus { return domain.Statuses },
	"badge":       badge,
	"count": func(c domain.StatusCounts, s string) int64 {
		return c[domain.ServiceStatus(s)]
	},
	"derefUint": func(v *uint) uint {
		if v == nil {
			return 0
		}
		return *v
	},
}

func roleLabel(r domain.Role) string {
	switch r {
	case domain.RoleClient:
		return "Cliente"
	case domain.RoleManager:
		return "Gerente"
	case domain.RoleMechanic:
		return "Mecânico"
	}
	return string(r)
}

// money renders an amount in the Brazilian format: R$ 1.234,56.
func money(v any) string {
	var amount float64
	switch x := v.(type) {
	case float64:
		amount = x
	case *float64:
		if x == nil {
			return "-"
		}
		amount = *x
	default:
		return "-"
	}

	s := fmt.Sprintf("%.2f", domain.RoundMoney(amount))
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format("02/01/2006 15:04")
	case *time.Time:
		if t == nil {
			return "-"
		}
		return t.UTC().Format("02/01/2006 15:04")
	}
	return "-"
}

// dateInput formats a date for an <input type="date"> value.
func dateInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func badge(s domain.ServiceStatus) string {
	switch s {
	case domain.StatusPending:
		return "secondary"
	case domain.StatusAwaitingQuote:
		return "warning"
	case domain.StatusQuoteApproved:
		return "info"
	case domain.StatusInProgress:
		return "primary"
	case domain.StatusCompleted:
		return "success"
	case domain.StatusCancelled:
		return "danger"
	}
	return "light"
}
