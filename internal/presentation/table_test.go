package presentation

import (
	"bytes"
	"strings"
	"testing"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/models/dtos"
)

func TestPresent_RendersHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewTablePresenter(&buf)

	presenter.Present(dtos.ResultSet{
		Headers: []string{"Destination Code", "Airport Name"},
		Rows: [][]string{
			{"JER", "Jersey Airport"},
			{"GCI", "Guernsey Airport"},
		},
	})

	out := buf.String()
	for _, want := range []string{"Destination Code", "Airport Name", "JER", "Jersey Airport", "GCI"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestPresent_EmptySetReportsMessageNotTable(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewTablePresenter(&buf)

	presenter.Present(dtos.ResultSet{Headers: []string{"Destination Code"}})

	out := buf.String()
	if !strings.Contains(out, constants.MsgNoData) {
		t.Errorf("Expected %q, got %q", constants.MsgNoData, out)
	}
	if strings.Contains(out, "Destination Code") {
		t.Errorf("Empty set must not render a table, got %q", out)
	}
}

func TestMessage_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewTablePresenter(&buf)

	presenter.Message("No changes have been made to the data.")
	if buf.String() != "No changes have been made to the data.\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}
