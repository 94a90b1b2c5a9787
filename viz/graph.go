// ABOUTME: Graphviz rendering of companies and their communications
// ABOUTME: One company or the whole book, with nodes colored by communication status
package viz

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/store"
	"github.com/harperreed/commtrack/views"
)

// GraphGenerator renders DOT graphs from a state snapshot.
type GraphGenerator struct {
	state store.State
	ref   time.Time
}

func NewGraphGenerator(st store.State, ref time.Time) *GraphGenerator {
	return &GraphGenerator{state: st, ref: ref}
}

// GenerateCompanyGraph renders one company and its communications.
func (g *GraphGenerator) GenerateCompanyGraph(companyID string) (string, error) {
	for _, c := range g.state.Companies {
		if c.ID == companyID {
			return g.render(c.Name, []models.Company{c})
		}
	}
	return "", fmt.Errorf("company not found: %s", companyID)
}

// GenerateCompleteGraph renders every company.
func (g *GraphGenerator) GenerateCompleteGraph() (string, error) {
	return g.render("Communication Graph", g.state.Companies)
}

func (g *GraphGenerator) render(label string, companies []models.Company) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() { _ = gv.Close() }()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() { _ = graph.Close() }()

	graph.SetLabel(label)
	graph.SetRankDir(cgraph.LRRank)

	overdue := idSet(views.Overdue(g.state.Communications, g.ref))
	dueToday := idSet(views.DueToday(g.state.Communications, g.ref))

	for _, company := range companies {
		companyNode, err := graph.CreateNodeByName("company_" + company.ID)
		if err != nil {
			return "", fmt.Errorf("failed to create company node: %w", err)
		}
		companyNode.SetLabel(fmt.Sprintf("%s\n%s", company.Name, company.Location))
		companyNode.SetShape("box")
		companyNode.SetStyle("filled")
		companyNode.SetFillColor("lightblue")

		for _, c := range g.state.Communications {
			if c.CompanyID != company.ID {
				continue
			}
			node, err := graph.CreateNodeByName("comm_" + c.ID)
			if err != nil {
				return "", fmt.Errorf("failed to create communication node: %w", err)
			}
			node.SetLabel(fmt.Sprintf("%s %s\n%s", MethodGlyph(c.MethodID), models.MethodName(c.MethodID), c.Date))
			node.SetShape("ellipse")
			node.SetStyle("filled")
			node.SetFillColor(statusColor(c, overdue, dueToday))

			edge, err := graph.CreateEdgeByName("comm_edge_"+c.ID, companyNode, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			if c.Completed {
				edge.SetStyle("dashed")
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

func statusColor(c models.Communication, overdue, dueToday map[string]bool) string {
	switch {
	case c.Completed:
		return "lightgrey"
	case dueToday[c.ID]:
		return "gold"
	case overdue[c.ID]:
		return "salmon"
	default:
		return "lightgreen"
	}
}

func idSet(comms []models.Communication) map[string]bool {
	set := make(map[string]bool, len(comms))
	for _, c := range comms {
		set[c.ID] = true
	}
	return set
}
