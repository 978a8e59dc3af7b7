package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/internship-checkin/internal/application"
	"github.com/bnema/internship-checkin/internal/domain"
)

// Render summarises a run: one block per account with its report and
// notification status.
func Render(outcomes []application.Outcome) (string, error) {
	return run(func(s styles) string {
		return renderRun(outcomes, s)
	})
}

// RenderAccounts lists the configured accounts.
func RenderAccounts(accounts []application.AccountSummary) (string, error) {
	return run(func(s styles) string {
		return renderAccounts(accounts, s)
	})
}

func renderRun(outcomes []application.Outcome, s styles) string {
	succeeded := 0
	for _, outcome := range outcomes {
		if outcome.Report.Succeeded() {
			succeeded++
		}
	}

	lines := []string{
		s.title.Render("Check-in run"),
		s.header.Render(fmt.Sprintf("accounts: %d  succeeded: %d  failed: %d", len(outcomes), succeeded, len(outcomes)-succeeded)),
	}

	if len(outcomes) == 0 {
		lines = append(lines, s.empty.Render("No account files configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, outcome := range outcomes {
		lines = append(lines, s.section.Render(renderOutcome(outcome, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOutcome(outcome application.Outcome, s styles) string {
	status := s.success.Render("ok")
	if !outcome.Report.Succeeded() {
		status = s.failure.Render("failed")
	}

	parts := []string{
		fmt.Sprintf("%s %s", s.account.Render(accountTitle(outcome.DisplayName, outcome.AccountID)), status),
	}

	if outcome.Report.Succeeded() {
		for _, line := range reportLines(outcome.Report.Body) {
			parts = append(parts, s.detail.Render("  "+line))
		}
	} else {
		parts = append(parts, s.failure.Render("  "+outcome.Report.Err.Error()))
		parts = append(parts, s.muted.Render("  kind: "+string(domain.KindOf(outcome.Report.Err))))
	}

	parts = append(parts, notificationLine(outcome, s))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func notificationLine(outcome application.Outcome, s styles) string {
	switch {
	case outcome.Notified:
		return s.muted.Render("  notification: sent")
	case outcome.NotifyErr != nil:
		return s.warning.Render("  notification: failed (" + outcome.NotifyErr.Error() + ")")
	default:
		return s.muted.Render("  notification: off")
	}
}

func renderAccounts(accounts []application.AccountSummary, s styles) string {
	lines := []string{
		s.title.Render("Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No account files configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range accounts {
		parts := []string{s.account.Render(accountTitle(account.DisplayName, account.ID))}
		if account.Err != nil {
			parts = append(parts, s.failure.Render("  "+account.Err.Error()))
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
			continue
		}

		parts = append(parts,
			s.detail.Render("  plan: "+planLabel(account.Plan)),
			s.detail.Render("  session: "+sessionLabel(account.HasToken)),
			s.detail.Render("  push: "+orOff(account.PushType)),
		)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func accountTitle(name string, id domain.AccountID) string {
	name = strings.TrimSpace(name)
	if name == "" || name == string(id) {
		return string(id)
	}
	return fmt.Sprintf("%s (%s)", name, id)
}

func reportLines(body string) []string {
	lines := make([]string, 0, 8)
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func planLabel(plan domain.PlanInfo) string {
	if !plan.HasPlan() {
		return "not resolved"
	}
	if plan.PlanName == "" {
		return plan.PlanID
	}
	return fmt.Sprintf("%s (%s)", plan.PlanName, plan.PlanID)
}

func sessionLabel(hasToken bool) string {
	if hasToken {
		return "cached"
	}
	return "login on next run"
}

func orOff(value string) string {
	if value == "" {
		return "off"
	}
	return value
}
