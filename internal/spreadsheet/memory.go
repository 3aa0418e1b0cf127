package spreadsheet

import (
	"bytes"
	"sync"

	"github.com/WynstelleID/finance-bot/internal/services"
)

// Memory records generated reports instead of rendering workbooks.
type Memory struct {
	mu      sync.Mutex
	reports []*services.Report
}

// NewMemory creates a Memory generator.
func NewMemory() *Memory {
	return &Memory{}
}

// Generate stores the report and returns a placeholder buffer.
func (m *Memory) Generate(rep *services.Report) (*bytes.Buffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, rep)
	return bytes.NewBufferString("spreadsheet"), nil
}

// Reports returns the reports generated so far.
func (m *Memory) Reports() []*services.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*services.Report, len(m.reports))
	copy(out, m.reports)
	return out
}
