package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	SuccessTitle = "Check-in succeeded"
	FailureTitle = "Check-in failed"

	ReportTimeLayout = "2006-01-02 15:04:05"
)

// RunReport is the outcome of one account run, sent once and discarded.
type RunReport struct {
	Title string
	Body  string
	Err   error
}

func (r RunReport) Succeeded() bool {
	return r.Err == nil
}

func (r RunReport) Message() Message {
	return Message{Title: r.Title, Body: r.Body}
}

type SuccessDetails struct {
	DisplayName string
	Type        CheckInType
	At          time.Time
	Address     string
	Previous    CheckInRecord
}

func NewSuccessReport(details SuccessDetails) RunReport {
	lines := []string{
		"Name: " + details.DisplayName,
		"Type: " + string(details.Type),
		"Time: " + details.At.Format(ReportTimeLayout),
		"Address: " + details.Address,
		"Previous type: " + orNone(string(details.Previous.Type)),
		"Previous time: " + orNone(details.Previous.CreateTime),
		"Previous address: " + orNone(details.Previous.Address),
	}

	return RunReport{
		Title: SuccessTitle,
		Body:  strings.Join(lines, "\n\n"),
	}
}

func NewFailureReport(err error) RunReport {
	if err == nil {
		err = ErrUnexpected
	}

	return RunReport{
		Title: FailureTitle,
		Body:  fmt.Sprintf("Error: %s", err.Error()),
		Err:   err,
	}
}

func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "none"
	}
	return value
}
