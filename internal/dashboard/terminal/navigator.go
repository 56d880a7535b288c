package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"toko-admin/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// The public product listing leaves archived products out.
const msgArchivedHidden = "Product yang diarsipkan tidak ditampilkan"

var pageTitles = map[string]string{
	"categories": "Categories",
	"products":   "Products",
	"banners":    "Banners",
}

// Getter fetches JSON from the admin API.
type Getter interface {
	Get(ctx context.Context, path string, out interface{}) error
}

// Navigator renders dashboard pages as tables. Pushing a list page such as
// "/{storeId}/products" fetches it from the API and prints it. Nothing is
// cached between pushes.
type Navigator struct {
	api Getter
	out io.Writer
	now func() time.Time
}

// NewNavigator returns a Navigator printing to out.
func NewNavigator(api Getter, out io.Writer) *Navigator {
	return &Navigator{api: api, out: out, now: time.Now}
}

// Refresh is a no-op beyond a debug entry: Push always fetches the page
// again.
func (n *Navigator) Refresh(ctx context.Context) {
	logrus.Debug("dashboard data refresh requested")
}

// Push fetches and prints the page at path. Unknown pages print their path
// only.
func (n *Navigator) Push(ctx context.Context, path string) {
	if err := n.render(ctx, path); err != nil {
		logrus.WithError(err).WithField("page", path).Warn("failed to render page")
		fmt.Fprintln(n.out, mutedStyle.Render(path))
	}
}

func (n *Navigator) render(ctx context.Context, path string) error {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 {
		return fmt.Errorf("unknown page %q", path)
	}
	storeID, page := parts[0], parts[1]
	apiPath := "/api/" + storeID + "/" + page

	var (
		headers []string
		rows    [][]string
	)
	switch page {
	case "categories":
		var categories []models.Category
		if err := n.api.Get(ctx, apiPath, &categories); err != nil {
			return err
		}
		headers, rows = n.categoryRows(categories)
	case "products":
		var products []models.Product
		if err := n.api.Get(ctx, apiPath, &products); err != nil {
			return err
		}
		headers, rows = n.productRows(products)
	case "banners":
		var banners []models.Banner
		if err := n.api.Get(ctx, apiPath, &banners); err != nil {
			return err
		}
		headers, rows = n.bannerRows(banners)
	default:
		return fmt.Errorf("unknown page %q", path)
	}

	fmt.Fprintln(n.out, titleStyle.Render(pageTitles[page]+" ("+humanize.Comma(int64(len(rows)))+")"))
	fmt.Fprintln(n.out, renderTable(headers, rows))
	if page == "products" {
		fmt.Fprintln(n.out, mutedStyle.Render(msgArchivedHidden))
	}
	return nil
}

func (n *Navigator) ago(t time.Time) string {
	return humanize.RelTime(t, n.now(), "ago", "from now")
}

func (n *Navigator) categoryRows(categories []models.Category) ([]string, [][]string) {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		banner := ""
		if c.Banner != nil {
			banner = c.Banner.Label
		}
		rows = append(rows, []string{c.ID, c.Name, banner, n.ago(c.CreatedAt)})
	}
	return []string{"ID", "Name", "Banner", "Created"}, rows
}

func (n *Navigator) productRows(products []models.Product) ([]string, [][]string) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		rows = append(rows, []string{
			p.ID,
			p.Name,
			"Rp " + humanize.CommafWithDigits(p.Price.InexactFloat64(), 2),
			category,
			yesNo(p.IsFeatured),
			yesNo(p.IsArchived),
			n.ago(p.CreatedAt),
		})
	}
	return []string{"ID", "Name", "Price", "Category", "Featured", "Archived", "Created"}, rows
}

func (n *Navigator) bannerRows(banners []models.Banner) ([]string, [][]string) {
	rows := make([][]string, 0, len(banners))
	for _, b := range banners {
		rows = append(rows, []string{b.ID, b.Label, n.ago(b.CreatedAt)})
	}
	return []string{"ID", "Label", "Created"}, rows
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
