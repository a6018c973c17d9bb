package chart

import (
	"fmt"

	"github.com/go-analyze/charts"
)

// diagramBox is one component box in the architecture diagram.
type diagramBox struct {
	x, y   int
	w, h   int
	fill   charts.Color
	label  string
	detail string
}

// diagramArrow is one directional connection between components.
type diagramArrow struct {
	x1, y1 int
	x2, y2 int
	label  string
}

// Component palette of the architecture diagram.
var (
	clientFill   = charts.Color{R: 0x34, G: 0x98, B: 0xdb, A: 255}
	mainFill     = charts.Color{R: 0xe7, G: 0x4c, B: 0x3c, A: 255}
	brokerFill   = charts.Color{R: 0xf3, G: 0x9c, B: 0x12, A: 255}
	agentFill    = charts.Color{R: 0x2e, G: 0xcc, B: 0x71, A: 255}
	databaseFill = charts.Color{R: 0x9b, G: 0x59, B: 0xb6, A: 255}
)

// diagramTitle is drawn centered above the topology.
const diagramTitle = "Pentool Multi-Agent Architecture"

// diagramFeatures is the sidebar summary next to the topology.
var diagramFeatures = []string{
	"- Go concurrency (goroutines)",
	"- Message-driven communication",
	"- Distributed microservices",
	"- Horizontal scalability",
	"- Async processing",
}

// diagramBoxes is the fixed component topology.
// Coordinates assume the default 1200x900 canvas.
var diagramBoxes = []diagramBox{
	{x: 500, y: 80, w: 200, h: 50, fill: clientFill, label: "User / CLI Client"},
	{x: 460, y: 190, w: 280, h: 64, fill: mainFill, label: "Main Agent", detail: "(REST API :8080)"},
	{x: 460, y: 314, w: 280, h: 64, fill: brokerFill, label: "NATS Message Broker", detail: "(Pub/Sub :4222)"},
	{x: 120, y: 460, w: 240, h: 64, fill: agentFill, label: "Scanner Agent", detail: "(Port Scanning)"},
	{x: 480, y: 460, w: 240, h: 64, fill: agentFill, label: "Analyzer Agent", detail: "(Service Detection)"},
	{x: 840, y: 460, w: 240, h: 64, fill: agentFill, label: "Reporter Agent", detail: "(Report Generation)"},
	{x: 840, y: 610, w: 240, h: 64, fill: databaseFill, label: "PostgreSQL", detail: "(Results Storage)"},
}

// diagramArrows is the fixed set of labeled connections.
var diagramArrows = []diagramArrow{
	{x1: 600, y1: 130, x2: 600, y2: 190, label: "HTTP REST"},
	{x1: 600, y1: 254, x2: 600, y2: 314, label: "NATS Pub/Sub"},
	{x1: 540, y1: 378, x2: 260, y2: 460},
	{x1: 600, y1: 378, x2: 600, y2: 460},
	{x1: 660, y1: 378, x2: 940, y2: 460},
	{x1: 960, y1: 524, x2: 960, y2: 610, label: "SQL"},
}

// DiagramRenderer draws the fixed system-architecture diagram.
// The topology is hand-authored constants: output is deterministic and
// independent of any measured data.
type DiagramRenderer struct {
	width  int
	height int
}

// DiagramOption configures a DiagramRenderer.
type DiagramOption func(*DiagramRenderer)

// WithDiagramSize overrides the rendered image dimensions in pixels.
func WithDiagramSize(width, height int) DiagramOption {
	return func(d *DiagramRenderer) {
		if width > 0 && height > 0 {
			d.width = width
			d.height = height
		}
	}
}

// NewDiagramRenderer creates a DiagramRenderer with default dimensions.
func NewDiagramRenderer(opts ...DiagramOption) *DiagramRenderer {
	d := &DiagramRenderer{
		width:  1200,
		height: 900,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render draws the architecture diagram and returns the encoded PNG.
func (d *DiagramRenderer) Render() ([]byte, error) {
	p := charts.NewPainter(charts.PainterOptions{
		OutputFormat: charts.ChartOutputPNG,
		Width:        d.width,
		Height:       d.height,
	})
	p.FilledRect(0, 0, d.width, d.height, charts.ColorWhite, charts.ColorWhite, 0)

	titleFont := charts.FontStyle{
		FontSize:  18,
		FontColor: charts.ColorBlack,
		Font:      charts.GetDefaultFont(),
	}
	d.drawCenteredText(p, diagramTitle, d.width/2, 40, titleFont)

	for _, arrow := range diagramArrows {
		d.drawArrow(p, arrow)
	}
	for _, box := range diagramBoxes {
		d.drawBox(p, box)
	}
	d.drawFeatures(p)

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render architecture diagram: %w", err)
	}
	return buf, nil
}

// drawBox draws one component box with its centered labels.
func (d *DiagramRenderer) drawBox(p *charts.Painter, box diagramBox) {
	p.FilledRect(box.x, box.y, box.x+box.w, box.y+box.h, box.fill, charts.ColorBlack, 2)

	labelFont := charts.FontStyle{
		FontSize:  13,
		FontColor: charts.ColorWhite,
		Font:      charts.GetDefaultFont(),
	}
	detailFont := charts.FontStyle{
		FontSize:  10,
		FontColor: charts.ColorWhite,
		Font:      charts.GetDefaultFont(),
	}

	cx := box.x + box.w/2
	if box.detail == "" {
		d.drawCenteredText(p, box.label, cx, box.y+box.h/2+5, labelFont)
		return
	}
	d.drawCenteredText(p, box.label, cx, box.y+box.h/2-3, labelFont)
	d.drawCenteredText(p, box.detail, cx, box.y+box.h/2+16, detailFont)
}

// drawArrow draws one connection line with an arrowhead and optional label.
func (d *DiagramRenderer) drawArrow(p *charts.Painter, arrow diagramArrow) {
	p.LineStroke([]charts.Point{
		{X: arrow.x1, Y: arrow.y1},
		{X: arrow.x2, Y: arrow.y2},
	}, charts.ColorBlack, 2)

	// Arrowhead: two short strokes angled back from the tip. The head is
	// drawn axis-aligned toward the dominant direction of the line.
	const headSize = 8
	dx := arrow.x2 - arrow.x1
	dy := arrow.y2 - arrow.y1
	var left, right charts.Point
	if abs(dy) >= abs(dx) {
		// Mostly vertical: head points down (all arrows flow downward).
		left = charts.Point{X: arrow.x2 - headSize, Y: arrow.y2 - headSize}
		right = charts.Point{X: arrow.x2 + headSize, Y: arrow.y2 - headSize}
	} else if dx > 0 {
		left = charts.Point{X: arrow.x2 - headSize, Y: arrow.y2 - headSize}
		right = charts.Point{X: arrow.x2 - headSize, Y: arrow.y2 + headSize}
	} else {
		left = charts.Point{X: arrow.x2 + headSize, Y: arrow.y2 - headSize}
		right = charts.Point{X: arrow.x2 + headSize, Y: arrow.y2 + headSize}
	}
	p.LineStroke([]charts.Point{left, {X: arrow.x2, Y: arrow.y2}, right}, charts.ColorBlack, 2)

	if arrow.label != "" {
		labelFont := charts.FontStyle{
			FontSize:  10,
			FontColor: charts.ColorBlack,
			Font:      charts.GetDefaultFont(),
		}
		midX := (arrow.x1+arrow.x2)/2 + 10
		midY := (arrow.y1 + arrow.y2) / 2
		p.Text(arrow.label, midX, midY, 0, labelFont)
	}
}

// drawFeatures draws the sidebar feature list.
func (d *DiagramRenderer) drawFeatures(p *charts.Painter) {
	font := charts.FontStyle{
		FontSize:  11,
		FontColor: charts.ColorBlack,
		Font:      charts.GetDefaultFont(),
	}
	x := 40
	y := 320
	for _, line := range diagramFeatures {
		p.Text(line, x, y, 0, font)
		y += 20
	}
}

// drawCenteredText draws text horizontally centered on cx with baseline y.
func (d *DiagramRenderer) drawCenteredText(p *charts.Painter, text string, cx, y int, font charts.FontStyle) {
	box := p.MeasureText(text, 0, font)
	p.Text(text, cx-box.Width()/2, y, 0, font)
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
