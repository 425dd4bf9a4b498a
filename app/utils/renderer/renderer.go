package renderer

import (
	"html/template"
	"time"

	"github.com/rmscampos/gosales/app/utils/format"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

func New() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"formatMoney": func(amount decimal.Decimal) string {
					return format.Money(amount)
				},
				"formatRate": func(rate decimal.Decimal) string {
					return format.Rate(rate)
				},
				"formatTime": func(t time.Time) string {
					return t.Format("02/01/2006 15:04")
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
			},
		},
	})
}
