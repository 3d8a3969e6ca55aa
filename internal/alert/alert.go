// Package alert formats critical and high severity breaks into notification
// previews. No real transport is wired — messages are printed for an
// operator to review, in the shape they would be sent to Slack or email.
package alert

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hedgeops/posrecon/internal/domain"
)

// maxBreaksPerMessage caps how many breaks a single Slack message lists.
const maxBreaksPerMessage = 10

// Recipients for the email preview.
var emailRecipients = []string{"ops-team@hedgeops.io", "risk@hedgeops.io"}

// Actionable filters the break list down to the severities that trigger an
// alert, preserving order.
func Actionable(breaks []domain.Break) []domain.Break {
	var out []domain.Break
	for _, b := range breaks {
		if b.Severity.Actionable() {
			out = append(out, b)
		}
	}
	return out
}

// FormatSlack renders the Slack-style alert body for the given actionable
// breaks. Only the first 10 breaks are listed in full.
func FormatSlack(actionable []domain.Break, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("*POSITION RECONCILIATION ALERT*\n")
	fmt.Fprintf(&sb, "Time: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Breaks Requiring Attention: %d\n", len(actionable))

	listed := actionable
	if len(listed) > maxBreaksPerMessage {
		listed = listed[:maxBreaksPerMessage]
	}
	for _, b := range listed {
		fmt.Fprintf(&sb, "\n*[%s]* %s (%s)\n", b.Severity, b.Symbol, b.AccountID)
		fmt.Fprintf(&sb, "- Type: %s\n", b.Type)
		fmt.Fprintf(&sb, "- Variance: $%s (%s%%)\n", b.Variance.Abs().StringFixed(2), signedPct(b))
		fmt.Fprintf(&sb, "- %s\n", b.Details)
	}

	return sb.String()
}

// Preview writes the full alert preview for a run. When no break reaches
// CRITICAL or HIGH severity it prints a single informational line and sends
// nothing.
func Preview(w io.Writer, breaks []domain.Break, now time.Time) {
	actionable := Actionable(breaks)
	if len(actionable) == 0 {
		fmt.Fprintln(w, "No critical or high severity breaks - no alerts needed")
		return
	}

	fmt.Fprintf(w, "ALERT: %d critical/high severity breaks detected\n\n", len(actionable))
	fmt.Fprintln(w, FormatSlack(actionable, now))

	fmt.Fprintln(w, "Email Alert Preview:")
	fmt.Fprintf(w, "  To: %s\n", strings.Join(emailRecipients, ", "))
	fmt.Fprintf(w, "  Subject: [URGENT] Position Recon: %d Breaks Detected\n", len(actionable))
	fmt.Fprintf(w, "  Body: %d position breaks require immediate attention\n", len(actionable))
}

func signedPct(b domain.Break) string {
	s := b.VariancePct.StringFixed(2)
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}
