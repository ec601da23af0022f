package controller

import (
	"fmt"
	"strconv"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

const (
	statusPass     = "PASS"
	statusFail     = "FAIL"
	statusNotFound = "NOT FOUND"
)

var (
	classificationHeader = []string{"Block", "Status", "OK", "Wrong place", "Missing", "Redundant"}
	blocksHeader         = []string{"Block", "Line", "Body lines"}
	reportHeader         = []string{"Package", "Block", "Status", "Details"}
)

func tallyStatus(t m.Tally) string {
	switch {
	case !t.WasFound:
		return statusNotFound
	case t.Passed():
		return statusPass
	default:
		return statusFail
	}
}

func classificationRows(c *m.Classification) [][]string {
	rows := make([][]string, 0, c.Len())

	c.Each(func(id string, t m.Tally) {
		rows = append(rows, []string{
			blockLabel(id),
			tallyStatus(t),
			strconv.Itoa(t.OK),
			strconv.Itoa(t.WrongPlace),
			strconv.Itoa(t.Missing),
			strconv.Itoa(t.Redundant),
		})
	})

	return rows
}

func classificationFooter(c *m.Classification) string {
	passed, total := c.Summary()
	return fmt.Sprintf("Passed %d/%d blocks", passed, total)
}

func blockRows(blocks []m.Block) [][]string {
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []string{blockLabel(b.ID), strconv.Itoa(b.Start + 1), strconv.Itoa(b.Size())})
	}

	return rows
}

func reportRows(report m.Report) [][]string {
	rows := make([][]string, 0, len(report.Data))

	for _, entry := range report.Data {
		status := statusPass
		details := ""

		if !entry.Passed() {
			status = statusFail

			for _, r := range entry.Results {
				if r.Failure != nil {
					details = r.Failure.NestedException
					break
				}
			}
		}

		rows = append(rows, []string{entry.PackageName, blockLabel(entry.MethodName), status, details})
	}

	return rows
}

func reportFooter(report m.Report) string {
	passed := 0

	for _, entry := range report.Data {
		if entry.Passed() {
			passed++
		}
	}

	return fmt.Sprintf("Passed %d/%d blocks", passed, len(report.Data))
}

// blockLabel renders the empty ID of a bare ":" header visibly.
func blockLabel(id string) string {
	if id == "" {
		return "(empty)"
	}

	return id
}
