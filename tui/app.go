package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/requests"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/schedulers"
)

type tickMsg time.Time

const tickInterval = 300 * time.Millisecond

// run holds one completed simulation; the TUI only reads it. Replaying or
// switching policies never mutates a run, it just moves the cursor.
type run struct {
	policy    core.PolicyConfig
	timeline  core.Timeline
	results   []core.ProcessResult
	aggregate core.AggregateMetrics
}

// Model animates the Gantt charts of all four policies over one scenario.
type Model struct {
	specs   []core.ProcessSpec
	runs    []run
	active  int
	cursor  int // playback position in simulated time
	playing bool
	width   int
}

// Run loads a scenario file (the API's job JSON shape), simulates every
// policy and starts the interactive viewer. An empty path uses the built-in
// demo scenario.
func Run(path string, quantum int) error {
	scenario, err := loadScenario(path)
	if err != nil {
		return err
	}
	if scenario.TimeQuantum != 0 {
		quantum = scenario.TimeQuantum
	}

	model, err := newModel(scenario.Specs(), quantum)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func loadScenario(path string) (*requests.ScheduleRequest, error) {
	if path == "" {
		return defaultScenario(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var scenario requests.ScheduleRequest
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func defaultScenario() *requests.ScheduleRequest {
	return &requests.ScheduleRequest{
		Jobs: []requests.Job{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
			{ProcessId: 3, ArrivalTime: 2, BurstTime: 8, Priority: 4},
			{ProcessId: 4, ArrivalTime: 3, BurstTime: 2, Priority: 3},
		},
	}
}

func newModel(specs []core.ProcessSpec, quantum int) (Model, error) {
	policies := []core.PolicyConfig{
		{Policy: core.FirstComeFirstServe},
		{Policy: core.ShortestJobFirst},
		{Policy: core.PriorityScheduling},
		{Policy: core.RoundRobin, Quantum: quantum},
	}

	model := Model{specs: specs, playing: true, width: 100}
	for _, policy := range policies {
		timeline, results, aggregate, err := schedulers.Simulate(specs, policy)
		if err != nil {
			return Model{}, err
		}
		model.runs = append(model.runs, run{
			policy:    policy,
			timeline:  timeline,
			results:   results,
			aggregate: aggregate,
		})
	}
	return model, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if m.playing && m.cursor < m.end() {
			m.cursor++
			if m.cursor == m.end() {
				m.playing = false
			}
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.cursor >= m.end() {
				m.cursor = 0
			}
			m.playing = !m.playing
		case "h", "left":
			m.playing = false
			if m.cursor > 0 {
				m.cursor--
			}
		case "l", "right":
			m.playing = false
			if m.cursor < m.end() {
				m.cursor++
			}
		case "r":
			m.cursor = 0
			m.playing = true
		case "tab":
			m.active = (m.active + 1) % len(m.runs)
			if m.cursor > m.end() {
				m.cursor = m.end()
			}
		}
		return m, nil
	}
	return m, nil
}

// end is the last timeline tick of the active run.
func (m Model) end() int {
	timeline := m.runs[m.active].timeline
	return timeline[len(timeline)-1].End
}

func (m Model) View() string {
	active := m.runs[m.active]

	var b strings.Builder
	b.WriteString(titleStyle.Render("CPU Scheduling"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  t=%d/%d", m.cursor, m.end())))
	if !m.playing {
		b.WriteString(dimStyle.Render("  paused"))
	}
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewGantt(active))
	b.WriteString("\n")
	b.WriteString(m.viewResults(active))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space play/pause · h/l step · tab policy · r replay · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.runs))
	for i, r := range m.runs {
		name := strings.ToUpper(r.policy.Policy.String())
		if r.policy.Policy == core.RoundRobin {
			name = fmt.Sprintf("%s q=%d", name, r.policy.Quantum)
		}
		if i == m.active {
			tabs = append(tabs, activeTab.Render("["+name+"]"))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+name+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// viewGantt renders one lane per process plus an idle lane. Cells left of the
// playback cursor are lit, the rest stay dim, which gives the reveal effect
// as the clock advances.
func (m Model) viewGantt(r run) string {
	end := r.timeline[len(r.timeline)-1].End
	cellWidth := 1
	if labelWidth := 6; (end*2)+labelWidth < m.width {
		cellWidth = 2
	}

	owner := make([]int, end)
	for _, segment := range r.timeline {
		for t := segment.Start; t < segment.End; t++ {
			owner[t] = segment.ProcessID
		}
	}

	var b strings.Builder
	lanes := make([]int, 0, len(m.specs)+1)
	for _, s := range m.specs {
		lanes = append(lanes, s.ID)
	}
	lanes = append(lanes, core.IdleID)

	for _, lane := range lanes {
		label := "IDLE"
		if lane != core.IdleID {
			label = fmt.Sprintf("P%d", lane)
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%5s ", label)))
		for t := 0; t < end; t++ {
			cell := strings.Repeat(" ", cellWidth)
			if owner[t] == lane {
				cell = strings.Repeat("█", cellWidth)
				if lane == core.IdleID {
					cell = strings.Repeat("░", cellWidth)
				}
			}
			style := dimStyle
			if t < m.cursor {
				style = processStyle(lane)
				if lane == core.IdleID {
					style = labelStyle
				}
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	// Time ruler with the playback cursor underneath.
	b.WriteString(labelStyle.Render("      "))
	for t := 0; t < end; t += 5 {
		mark := fmt.Sprintf("%-*d", 5*cellWidth, t)
		if len(mark) > (end-t)*cellWidth {
			mark = mark[:(end-t)*cellWidth]
		}
		b.WriteString(dimStyle.Render(mark))
	}
	b.WriteString("\n")
	offset := 6
	if m.cursor > 0 {
		offset += (m.cursor - 1) * cellWidth
	}
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteString(activeTab.Render("▲"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewResults(r run) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%5s %8s %6s %11s %11s %8s %9s", "PID", "ARRIVAL", "BURST", "COMPLETION", "TURNAROUND", "WAITING", "RESPONSE")))
	b.WriteString("\n")
	for i, result := range r.results {
		spec := m.specs[i]
		row := fmt.Sprintf("%5s %8d %6d %11d %11d %8d %9d",
			fmt.Sprintf("P%d", result.ID), spec.ArrivalTime, spec.BurstTime,
			result.CompletionTime, result.TurnAroundTime, result.WaitingTime, result.ResponseTime)
		b.WriteString(valueStyle.Render(row))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf(
		"avg wait %.2f · avg turnaround %.2f · avg response %.2f · cpu %.0f%% · throughput %.3f",
		r.aggregate.AverageWaitingTime, r.aggregate.AverageTurnAroundTime,
		r.aggregate.AverageResponseTime, r.aggregate.CPUUtilization*100, r.aggregate.Throughput)))
	b.WriteString("\n")
	return b.String()
}
