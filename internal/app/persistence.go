package app

import (
	"errors"
	"log/slog"

	"github.com/llehouerou/sheets/internal/demo"
	"github.com/llehouerou/sheets/internal/errmsg"
	"github.com/llehouerou/sheets/internal/position"
	"github.com/llehouerou/sheets/internal/sheet"
)

// restorePosition starts item at its last settled position when that
// position is still supported.
func (m *Model) restorePosition(item *sheet.Item) {
	if !m.remember {
		return
	}
	p, ok, err := m.stateMgr.Position(item.Name)
	if err != nil {
		m.setError(errmsg.OpPositionLoad, err)
		return
	}
	if !ok || p == position.Closed || !item.Configuration.Supports(p) {
		return
	}
	slog.Debug("app: restore position", "sheet", item.Name, "position", p)
	item.Configuration.InitialPosition = p
}

// savePosition records where a sheet settled. Closed is not a position to
// come back to.
func (m *Model) savePosition(name string, p position.Position) {
	if !m.remember || p == position.Closed {
		return
	}
	m.stateMgr.SavePosition(name, p)
}

func (m *Model) forgetPositions() {
	var errs []error
	for _, ex := range demo.Examples {
		errs = append(errs, m.stateMgr.Forget(ex.Name))
	}
	if err := errors.Join(errs...); err != nil {
		m.setError(errmsg.OpPositionSave, err)
		return
	}
	m.setStatus("positions forgotten")
}
