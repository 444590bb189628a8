package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const heartbeatLayout = "02/01/2006-15:04:05"

// Heartbeat appends a liveness line, optionally confirming the HTTP surface
// is reachable when HEALTHCHECK_URL is set.
func (r *Runner) Heartbeat(ctx context.Context) {
	line := time.Now().Format(heartbeatLayout) + " CRM is alive"
	if r.healthURL != "" {
		if err := r.pingHealth(ctx); err != nil {
			line += fmt.Sprintf(" | healthcheck error: %v", err)
		} else {
			line += " | healthcheck: ok"
		}
	}
	r.appendLine(r.heartbeatLog, line)
}

func (r *Runner) pingHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.healthURL, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func (r *Runner) RestockLowStock(ctx context.Context) {
	result, err := r.productService.UpdateLowStock(ctx)
	if err != nil {
		r.log.Error("low-stock restock failed", "error", err)
		return
	}
	r.appendLine(r.lowStockLog, fmt.Sprintf("%s - %s", time.Now().UTC().Format(time.RFC3339), result.Message))
	for _, p := range result.Products {
		r.appendLine(r.lowStockLog, fmt.Sprintf("  %s: stock now %d", p.Name, p.Stock))
	}
}

func (r *Runner) GenerateReport(ctx context.Context) {
	report, err := r.reportService.Generate(ctx)
	if err != nil {
		r.log.Error("report generation failed", "error", err)
		return
	}
	summary := report.Summary()
	r.appendLine(r.reportLog, summary)
	if r.webhookURL != "" {
		if err := r.postReport(ctx, summary); err != nil {
			r.appendLine(r.reportLog, fmt.Sprintf("Error sending report: %v", err))
		}
	}
}

func (r *Runner) postReport(ctx context.Context, summary string) error {
	body, err := json.Marshal(map[string]string{"report": summary})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

// SendOrderReminders logs a reminder line for every order placed in the last
// seven days.
func (r *Runner) SendOrderReminders(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -7)
	orders, err := r.orderService.GetSince(ctx, cutoff)
	if err != nil {
		r.log.Error("order reminders failed", "error", err)
		return
	}
	for _, o := range orders {
		email := "unknown"
		if o.Customer != nil {
			email = o.Customer.Email
		}
		r.appendLine(r.remindersLog, fmt.Sprintf("Reminder: Order %s for customer %s", o.ID, email))
	}
	r.log.Info("order reminders processed", "count", len(orders))
}

func (r *Runner) appendLine(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.log.Error("cannot open job log file", "path", path, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		r.log.Error("cannot write job log file", "path", path, "error", err)
	}
}
