package action

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func mustGravity(t *testing.T, gravity, fromY, toY float64, bounces int, bounciness float64) *GravityAction {
	t.Helper()
	g := NewGravityAction()
	if err := g.Init(gravity, fromY, toY, bounces, bounciness); err != nil {
		t.Fatalf("Init(%v, %v, %v, %v, %v) error: %v", gravity, fromY, toY, bounces, bounciness, err)
	}
	return g
}

func TestGravityConcreteScenario(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 1, 0.5)

	if g.Segments() != 3 {
		t.Fatalf("Segments: got %d, want 3", g.Segments())
	}

	fall := math.Sqrt(2 * 300.0 / 3000)
	bounce := math.Sqrt(2 * 150.0 / 3000)
	if math.Abs(g.SegmentDuration(0)-fall) > epsilon {
		t.Errorf("segment 0: got %.6f, want %.6f", g.SegmentDuration(0), fall)
	}
	if math.Abs(fall-0.4472) > 1e-4 || math.Abs(bounce-0.3162) > 1e-4 {
		t.Fatalf("reference values drifted: fall=%.4f bounce=%.4f", fall, bounce)
	}
	for i := 1; i <= 2; i++ {
		if math.Abs(g.SegmentDuration(i)-bounce) > epsilon {
			t.Errorf("segment %d: got %.6f, want %.6f", i, g.SegmentDuration(i), bounce)
		}
		if g.SegmentHeight(i) != 150 {
			t.Errorf("segment %d height: got %.3f, want 150", i, g.SegmentHeight(i))
		}
	}

	if math.Abs(g.Duration()-(fall+2*bounce)) > epsilon {
		t.Errorf("Duration: got %.6f, want %.6f", g.Duration(), fall+2*bounce)
	}
	if math.Abs(g.Duration()-1.0796) > 1e-4 {
		t.Errorf("Duration: got %.4f, want ≈1.0796", g.Duration())
	}
	if y := g.Position(g.Duration()); y != 300 {
		t.Errorf("Position at total duration: got %.6f, want 300", y)
	}
}

func TestGravityTotalIsSumOfSegments(t *testing.T) {
	cases := []struct {
		gravity, fromY, toY float64
		bounces             int
		bounciness          float64
	}{
		{3000, 0, 300, 0, 0},
		{3000, -100, 300, 3, 0.5},
		{200, 50, 60, 20, 1},
		{9.81, 0, 1, 20, 0.9},
		{1000, 10, 10, 5, 0.5},
		{500, 0, 400, 4, 0},
	}

	for _, c := range cases {
		g := mustGravity(t, c.gravity, c.fromY, c.toY, c.bounces, c.bounciness)

		sum := 0.0
		for i := 0; i < g.Segments(); i++ {
			sum += g.SegmentDuration(i)
			if i > 0 && g.CumulativeDuration(i) < g.CumulativeDuration(i-1) {
				t.Errorf("%+v: cumulative duration decreased at %d", c, i)
			}
		}
		if math.Abs(sum-g.Duration()) > epsilon {
			t.Errorf("%+v: total %.9f != segment sum %.9f", c, g.Duration(), sum)
		}
		if g.CumulativeDuration(g.Segments()-1) != g.Duration() {
			t.Errorf("%+v: last cumulative %.9f != total %.9f", c, g.CumulativeDuration(g.Segments()-1), g.Duration())
		}
		if y := g.Position(g.Duration()); y != c.toY {
			t.Errorf("%+v: Position(total) = %.9f, want %.9f", c, y, c.toY)
		}
	}
}

func TestGravityBounceSymmetry(t *testing.T) {
	g := mustGravity(t, 3000, 0, 400, 5, 0.6)

	for b := 1; b <= 5; b++ {
		rise, fall := 2*b-1, 2*b
		if g.SegmentDuration(rise) != g.SegmentDuration(fall) {
			t.Errorf("bounce %d: rise %.6f != fall %.6f", b, g.SegmentDuration(rise), g.SegmentDuration(fall))
		}
		if g.SegmentHeight(rise) != g.SegmentHeight(fall) {
			t.Errorf("bounce %d: apex heights differ %.6f != %.6f", b, g.SegmentHeight(rise), g.SegmentHeight(fall))
		}

		// 上升段结束时（最高点）与下落段开始时位置一致
		apex := g.CumulativeDuration(rise)
		before := g.Position(apex - 1e-9)
		after := g.Position(apex)
		if math.Abs(before-after) > 1e-4 {
			t.Errorf("bounce %d: discontinuity at apex %.6f vs %.6f", b, before, after)
		}
		if math.Abs(after-g.SegmentHeight(fall)) > 1e-9 {
			t.Errorf("bounce %d: fall should start at apex height %.6f, got %.6f", b, g.SegmentHeight(fall), after)
		}
	}

	// 每次弹跳高度按 bounciness 衰减
	distance := 400.0
	for b := 1; b <= 5; b++ {
		distance *= 0.6
		if math.Abs(g.SegmentHeight(2*b)-(400-distance)) > 1e-9 {
			t.Errorf("bounce %d apex: got %.6f, want %.6f", b, g.SegmentHeight(2*b), 400-distance)
		}
	}
}

func TestGravityMonotonicWithinSegments(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 2, 0.5)

	const samples = 50
	for seg := 0; seg < g.Segments(); seg++ {
		start := 0.0
		if seg > 0 {
			start = g.CumulativeDuration(seg - 1)
		}
		end := g.CumulativeDuration(seg)
		prev := g.Position(start)
		for i := 1; i < samples; i++ {
			y := g.Position(start + (end-start)*float64(i)/samples)
			switch {
			case seg%2 == 1 && y > prev+epsilon:
				// 上升段：Y 减小（向上）
				t.Fatalf("segment %d should rise, y %.6f -> %.6f", seg, prev, y)
			case seg%2 == 0 && y < prev-epsilon:
				// 下落段：Y 增大（向下）
				t.Fatalf("segment %d should fall, y %.6f -> %.6f", seg, prev, y)
			}
			prev = y
		}
	}
}

func TestGravityContinuousAtLanding(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 2, 0.5)

	for _, seg := range []int{0, 2} {
		landing := g.CumulativeDuration(seg)
		if y := g.Position(landing - 1e-9); math.Abs(y-300) > 1e-3 {
			t.Errorf("segment %d should end on the ground, got %.6f", seg, y)
		}
		if y := g.Position(landing); math.Abs(y-300) > 1e-6 {
			t.Errorf("segment %d should start the bounce on the ground, got %.6f", seg+1, y)
		}
	}
}

func TestGravityTerminalStateIsIdempotent(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 3, 0.7)

	for _, extra := range []float64{0, 1e-12, 0.5, 100} {
		if y := g.Position(g.Duration() + extra); y != 300 {
			t.Errorf("Position(total+%v) = %.6f, want 300", extra, y)
		}
	}

	y, finished := g.Step(g.Duration() + 1)
	if !finished || y != 300 {
		t.Fatalf("Step past the end: got (%.6f, %v), want (300, true)", y, finished)
	}
	for i := 0; i < 3; i++ {
		y, finished = g.Step(0.016)
		if !finished || y != 300 {
			t.Errorf("Step after finish: got (%.6f, %v), want (300, true)", y, finished)
		}
	}
}

func TestGravityStepAccumulates(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 1, 0.5)

	elapsed := 0.0
	for i := 0; i < 30; i++ {
		y, finished := g.Step(0.02)
		elapsed += 0.02
		if math.Abs(g.Elapsed()-elapsed) > epsilon {
			t.Fatalf("Elapsed: got %.6f, want %.6f", g.Elapsed(), elapsed)
		}
		if y != g.Position(g.Elapsed()) {
			t.Fatalf("Step should return Position(elapsed)")
		}
		if finished != (g.Elapsed() >= g.Duration()) {
			t.Fatalf("finished flag mismatch at %.4f", g.Elapsed())
		}
	}

	// 负的 delta 不会倒退时间
	before := g.Elapsed()
	g.Step(-1)
	if g.Elapsed() != before {
		t.Errorf("negative delta should be ignored, elapsed %.6f -> %.6f", before, g.Elapsed())
	}
}

func TestGravityInitialFallFollowsKinematics(t *testing.T) {
	g := mustGravity(t, 3000, 100, 400, 0, 0)

	for _, tm := range []float64{0, 0.05, 0.1, 0.2, 0.3} {
		want := 100 + 0.5*3000*tm*tm
		if got := g.Position(tm); math.Abs(got-want) > 1e-9 {
			t.Errorf("Position(%.2f): got %.6f, want %.6f", tm, got, want)
		}
	}
}

func TestGravityActWritesActorY(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 0, 0)
	actor := &testActor{y: -1}
	g.SetActor(actor)

	if g.Act(0.1) {
		t.Fatal("should not finish after 0.1s")
	}
	if math.Abs(actor.y-15) > 1e-9 {
		t.Errorf("actor y: got %.6f, want 15", actor.y)
	}
	if !g.Act(1) {
		t.Fatal("should finish after 1.1s")
	}
	if actor.y != 300 {
		t.Errorf("actor y at end: got %.6f, want 300", actor.y)
	}

	// 没有演员时 Act 不应 panic
	g.SetActor(nil)
	g.Act(0.1)
}

func TestGravityRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name       string
		gravity    float64
		fromY, toY float64
		bounces    int
		bounciness float64
		message    string
	}{
		{"zero gravity", 0, 0, 300, 1, 0.5, "gravity must be positive"},
		{"negative gravity", -10, 0, 300, 1, 0.5, "gravity must be positive"},
		{"NaN gravity", math.NaN(), 0, 300, 1, 0.5, "gravity must be positive"},
		{"fromY above toY", 3000, 301, 300, 1, 0.5, "fromY cannot be > toY"},
		{"21 bounces", 3000, 0, 300, 21, 0.5, "bounces should be between 0 and 20"},
		{"negative bounces", 3000, 0, 300, -1, 0.5, "bounces should be between 0 and 20"},
		{"bounciness 1.5", 3000, 0, 300, 1, 1.5, "bounciness should be between 0 and 1"},
		{"negative bounciness", 3000, 0, 300, 1, -0.1, "bounciness should be between 0 and 1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := mustGravity(t, 1000, 0, 100, 2, 0.5)
			g.Step(0.1)
			before := *g

			err := g.Init(c.gravity, c.fromY, c.toY, c.bounces, c.bounciness)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			if !strings.Contains(err.Error(), c.message) {
				t.Errorf("expected message %q, got %q", c.message, err.Error())
			}
			if *g != before {
				t.Error("failed Init must not change any state")
			}
		})
	}
}

func TestGravityReinitLeavesNoResidue(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 20, 0.9)
	g.Step(0.5)

	if err := g.Init(3000, 0, 300, 1, 0.5); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	fresh := mustGravity(t, 3000, 0, 300, 1, 0.5)

	if g.Elapsed() != 0 {
		t.Errorf("elapsed should reset, got %.6f", g.Elapsed())
	}
	if *g != *fresh {
		t.Error("re-initialized action should equal a freshly initialized one")
	}
}

func TestGravityReset(t *testing.T) {
	g := mustGravity(t, 1000, 0, 300, 4, 0.5)
	g.SetActor(&testActor{})
	g.Step(0.3)

	g.Reset()
	if g.Gravity() != DefaultGravity || g.ToY() != 0 || g.Segments() != 1 || g.Duration() != 0 || g.Elapsed() != 0 {
		t.Errorf("Reset should restore defaults, got gravity=%v toY=%v segments=%v duration=%v elapsed=%v",
			g.Gravity(), g.ToY(), g.Segments(), g.Duration(), g.Elapsed())
	}
	if g.Actor() != nil {
		t.Error("Reset should detach the actor")
	}
	if *g != *NewGravityAction() {
		t.Error("Reset action should equal a new action")
	}

	// 默认状态下立即完成并停在 0
	y, finished := g.Step(0)
	if y != 0 || !finished {
		t.Errorf("default Step: got (%v, %v), want (0, true)", y, finished)
	}
}

func TestGravityRestart(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 1, 0.5)
	g.Step(0.6)
	g.Restart()
	if g.Elapsed() != 0 {
		t.Errorf("Restart should rewind elapsed, got %.6f", g.Elapsed())
	}
	if g.Segments() != 3 {
		t.Error("Restart should keep the segment table")
	}
}

func TestGravityZeroBounciness(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 3, 0)

	fall := FallDuration(300, 3000)
	if math.Abs(g.Duration()-fall) > epsilon {
		t.Errorf("zero-height bounces add no time: got %.6f, want %.6f", g.Duration(), fall)
	}
	if y := g.Position(fall * 0.5); math.Abs(y-FallDistance(fall*0.5, 3000)) > 1e-9 {
		t.Errorf("unexpected position mid-fall: %.6f", y)
	}
}

func TestGravityLastSegmentFallback(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 1, 0.5)

	// 找不到匹配段时退回最后一段
	if got := g.segmentAt(g.Duration()); got != g.Segments()-1 {
		t.Errorf("segmentAt(total): got %d, want %d", got, g.Segments()-1)
	}
	if got := g.segmentAt(0); got != 0 {
		t.Errorf("segmentAt(0): got %d, want 0", got)
	}
	if got := g.segmentAt(g.CumulativeDuration(0)); got != 1 {
		t.Errorf("segmentAt(landing): got %d, want 1", got)
	}
}

func TestGravityLandings(t *testing.T) {
	g := mustGravity(t, 3000, 0, 300, 2, 0.5)

	if g.Landings() != 0 {
		t.Fatalf("no landings before start, got %d", g.Landings())
	}
	g.Step(g.CumulativeDuration(0))
	if g.Landings() != 1 {
		t.Errorf("after the initial fall: got %d landings, want 1", g.Landings())
	}
	g.Step(g.CumulativeDuration(2) - g.Elapsed() + 1e-9)
	if g.Landings() != 2 {
		t.Errorf("after the first bounce: got %d landings, want 2", g.Landings())
	}
	g.Step(10)
	if g.Landings() != 3 {
		t.Errorf("after finishing: got %d landings, want 3", g.Landings())
	}
}

func TestGravityLandingsZeroHeight(t *testing.T) {
	tests := []struct {
		name    string
		bounces int
	}{
		{name: "no bounces", bounces: 0},
		{name: "with bounces", bounces: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 起点与落点重合：总时长为 0，第一帧即完成
			g := mustGravity(t, 3000, 300, 300, tt.bounces, 0.5)
			if g.Duration() != 0 {
				t.Fatalf("expected zero duration, got %v", g.Duration())
			}
			if g.Landings() != 0 {
				t.Errorf("no landings before the first step, got %d", g.Landings())
			}

			if _, finished := g.Step(1.0 / 60.0); !finished {
				t.Fatal("zero-height drop should finish on the first step")
			}
			if g.Landings() != tt.bounces+1 {
				t.Errorf("got %d landings, want %d", g.Landings(), tt.bounces+1)
			}

			g.Restart()
			if g.Landings() != 0 {
				t.Errorf("Restart should clear landings, got %d", g.Landings())
			}
		})
	}
}

func TestFallHelpersAreInverse(t *testing.T) {
	for _, d := range []float64{0, 1, 150, 300, 12345} {
		tm := FallDuration(d, 3000)
		if got := FallDistance(tm, 3000); math.Abs(got-d) > 1e-6 {
			t.Errorf("FallDistance(FallDuration(%v)) = %v", d, got)
		}
	}
}
