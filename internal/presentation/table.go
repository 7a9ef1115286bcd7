package presentation

import (
	"fmt"
	"io"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/models/dtos"

	"github.com/olekukonko/tablewriter"
)

// Presenter renders result sets for the operator. Services hand it result
// rows plus the matching header labels; the empty case is reported as a
// message, never as an empty table.
type Presenter interface {
	Present(rs dtos.ResultSet)
	Message(msg string)
}

// TablePresenter renders result sets as bordered tables.
type TablePresenter struct {
	out io.Writer
}

func NewTablePresenter(out io.Writer) *TablePresenter {
	return &TablePresenter{out: out}
}

func (p *TablePresenter) Present(rs dtos.ResultSet) {
	if rs.Empty() {
		p.Message(constants.MsgNoData)
		return
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader(rs.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range rs.Rows {
		table.Append(row)
	}
	table.Render()
}

func (p *TablePresenter) Message(msg string) {
	fmt.Fprintln(p.out, msg)
}
