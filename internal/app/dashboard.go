/**
 * @description
 * Dashboard report model. Holds the latest report snapshot fetched from the
 * reports resource and shallow-merges partial-report JSON pushed over the
 * real-time channel into it. A lost channel connection is a non-fatal status
 * indicator; the snapshot keeps rendering and a periodic full refresh
 * re-synchronizes it.
 */

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"
	"sync"

	"github.com/CodeLearner2024/ziganya-client/internal/domain"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
)

// Dashboard owns the report snapshot for the dashboard screen.
type Dashboard struct {
	reportsGw *apiclient.Resource[domain.Report]

	mu        sync.Mutex
	report    domain.Report
	connected bool
}

// NewDashboard binds the dashboard to the reports resource.
func NewDashboard(client *apiclient.Client) *Dashboard {
	return &Dashboard{
		reportsGw: apiclient.NewResource[domain.Report](client, "/reports"),
	}
}

// Refresh replaces the snapshot with a full fetch from the reports resource.
func (d *Dashboard) Refresh(ctx context.Context) error {
	report, err := d.reportsGw.One(ctx)
	if err != nil {
		log.Printf("level=warn component=dashboard msg=\"report refresh failed\" err=%v", err)
		return err
	}
	d.mu.Lock()
	d.report = *report
	d.mu.Unlock()
	return nil
}

// Report returns the current snapshot.
func (d *Dashboard) Report() domain.Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.report
}

// Connected reports whether the real-time channel is currently attached.
func (d *Dashboard) Connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected
}

// SetConnected flips the channel status indicator.
func (d *Dashboard) SetConnected(connected bool) {
	d.mu.Lock()
	d.connected = connected
	d.mu.Unlock()
}

// HandleMessage shallow-merges one pushed partial-report payload into the
// snapshot: only the keys present in the message overwrite the current
// values. The signature matches the report stream's binding handlers; a
// malformed payload is dropped, not re-queued.
func (d *Dashboard) HandleMessage(body []byte) bool {
	var partial map[string]json.RawMessage
	if err := json.Unmarshal(body, &partial); err != nil {
		log.Printf("level=warn component=dashboard msg=\"dropping malformed report update\" err=%v", err)
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := json.Marshal(d.report)
	if err != nil {
		return true
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(current, &merged); err != nil {
		return true
	}
	for key, value := range partial {
		merged[key] = value
	}
	remarshaled, err := json.Marshal(merged)
	if err != nil {
		return true
	}
	var next domain.Report
	if err := json.Unmarshal(remarshaled, &next); err != nil {
		log.Printf("level=warn component=dashboard msg=\"dropping incompatible report update\" err=%v", err)
		return true
	}
	d.report = next
	return true
}

// RenderHTML produces the shareable report document handed to the document
// generation collaborator.
func (d *Dashboard) RenderHTML() string {
	report := d.Report()
	var b strings.Builder
	b.WriteString("<html><head><title>Ziganya report</title></head><body>")
	b.WriteString("<h1>Association report</h1><table>")
	row := func(label string, value string) {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>", html.EscapeString(label), html.EscapeString(value))
	}
	row("Members", fmt.Sprintf("%d", report.MemberCount))
	row("Total shares", fmt.Sprintf("%d", report.TotalShares))
	row("Total contributions", fmt.Sprintf("%.2f", report.TotalContributions))
	row("Total credits", fmt.Sprintf("%.2f", report.TotalCredits))
	row("Total refunds", fmt.Sprintf("%.2f", report.TotalRefunds))
	row("Available balance", fmt.Sprintf("%.2f", report.AvailableBalance))
	if report.GeneratedAt != "" {
		row("Generated at", report.GeneratedAt)
	}
	b.WriteString("</table></body></html>")
	return b.String()
}
