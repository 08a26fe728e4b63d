// cmd/gravity_tui/main.go
// 终端重力演示：每个预设一列小球，同时下落并弹跳，触地时发出提示音
//
// 用法：
//   go run ./cmd/gravity_tui --presets=data/gravity_presets.yaml --sound=false

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/gravity/pkg/config"
)

var (
	presetsPath = flag.String("presets", "data/gravity_presets.yaml", "重力预设文件路径")
	extraDelay  = flag.Float64("delay", 0.3, "每轮结束后的额外等待（秒）")
	sound       = flag.Bool("sound", true, "触地音效")
	logPath     = flag.String("log", "", "日志文件（为空时不输出日志）")
)

const (
	frameTime  = 16 * time.Millisecond // ~60 FPS
	columnGap  = 14
	headerRows = 2
	footerRows = 2
)

// terminal 终端渲染与输入
type terminal struct {
	screen  tcell.Screen
	host    *host
	clicker *clicker
	speed   float64
	paused  bool
	width   int
	height  int
}

func newTerminal(h *host, c *clicker) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	t := &terminal{screen: screen, host: h, clicker: c, speed: 1}
	t.width, t.height = screen.Size()
	h.onLanding = c.click
	return t, nil
}

// rowFor 把世界坐标 y 映射到终端行
func (t *terminal) rowFor(y float64) int {
	rows := t.height - headerRows - footerRows - 1
	if rows < 1 || t.host.groundY <= 0 {
		return headerRows
	}
	return headerRows + int(y/t.host.groundY*float64(rows)+0.5)
}

func (t *terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *terminal) draw() {
	t.screen.Clear()

	header := fmt.Sprintf("round %d | t=%.2fs | speed x%.2f | space: pause  +/-: speed  r: restart  q: quit",
		t.host.round, t.host.time, t.speed)
	t.drawText(0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	groundRow := t.rowFor(t.host.groundY) + 1
	groundStyle := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	for x := 0; x < t.width; x++ {
		t.screen.SetContent(x, groundRow, '▀', nil, groundStyle)
	}

	ballColors := []tcell.Color{tcell.ColorRed, tcell.ColorGreen, tcell.ColorBlue, tcell.ColorPurple, tcell.ColorTeal}
	for i, c := range t.host.columns {
		x := 2 + i*columnGap + columnGap/2
		style := tcell.StyleDefault.Foreground(ballColors[i%len(ballColors)])
		t.screen.SetContent(x, t.rowFor(c.y), '●', nil, style)
		t.drawText(x-len(c.name)/2, groundRow+1, c.name, tcell.StyleDefault)
	}

	t.screen.Show()
}

// handleEvent 处理输入，返回 false 表示退出
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.paused = !t.paused
		case '+', '=':
			t.speed = min(t.speed*2, 4)
		case '-':
			t.speed = max(t.speed/2, 0.125)
		case 'r':
			t.host.restart()
		}
	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

func (t *terminal) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !t.paused {
				t.host.update(frameTime.Seconds() * t.speed)
			}
			t.draw()
		}
	}
}

func (t *terminal) close() {
	t.clicker.close()
	t.screen.Fini()
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadGravityConfig(*presetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "重力预设加载失败: %v\n", err)
		os.Exit(1)
	}

	h := newHost(cfg, *extraDelay)
	t, err := newTerminal(h, newClicker(*sound))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer t.close()

	h.startRound()
	t.run()
}
