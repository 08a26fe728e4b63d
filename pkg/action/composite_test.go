package action

import "testing"

func TestDelayAction(t *testing.T) {
	child := newLeaf(0.5)
	d := &DelayAction{}
	d.Init(1, child)

	if d.Act(0.75) {
		t.Fatal("should still be waiting")
	}
	if child.elapsed != 0 {
		t.Fatal("child must not run while waiting")
	}
	// 等待结束那一帧剩余的 0.5 秒交给子动作
	if !d.Act(0.75) {
		t.Fatal("leftover time should finish the child")
	}
	if child.elapsed != 0.5 {
		t.Errorf("child elapsed: got %v, want 0.5", child.elapsed)
	}

	d.Restart()
	if d.Time() != 0 || child.elapsed != 0 {
		t.Error("Restart should rewind the wait and the child")
	}
	d.Finish()
	if !d.Act(0.5) {
		t.Error("Finish should skip the wait")
	}
}

func TestDelayActionWithoutChild(t *testing.T) {
	d := &DelayAction{}
	d.Init(0.5, nil)

	if d.Act(0.25) {
		t.Fatal("should still be waiting")
	}
	if !d.Act(0.25) {
		t.Error("timer should finish when the wait ends")
	}
}

func TestSequenceAction(t *testing.T) {
	first, second := newLeaf(0.25), newLeaf(0.25)
	s := &SequenceAction{}
	s.Add(first)
	s.Add(second)

	if s.Act(0.25) {
		t.Fatal("sequence finished too early")
	}
	if s.Index() != 1 {
		t.Errorf("Index: got %d, want 1", s.Index())
	}
	if second.elapsed != 0 {
		t.Error("second child starts on the next frame")
	}
	if !s.Act(0.25) {
		t.Fatal("sequence should finish with its last child")
	}
	if !s.Act(0.25) {
		t.Error("finished sequence stays finished")
	}

	s.Restart()
	if s.Index() != 0 || first.elapsed != 0 {
		t.Error("Restart should rewind every child")
	}
	if !(&SequenceAction{}).Act(0) {
		t.Error("empty sequence finishes immediately")
	}
}

func TestParallelAction(t *testing.T) {
	short, long := newLeaf(0.25), newLeaf(0.5)
	p := &ParallelAction{}
	p.Add(short)
	p.Add(long)

	if p.Act(0.25) {
		t.Fatal("parallel finished before its longest child")
	}
	if !p.Act(0.25) {
		t.Fatal("parallel should finish with its longest child")
	}
	if short.elapsed != 0.5 || long.elapsed != 0.5 {
		t.Error("every child is driven on every frame")
	}

	p.Restart()
	if p.Act(0.25) {
		t.Error("Restart should clear the completed flag")
	}
	if !(&ParallelAction{}).Act(0) {
		t.Error("empty parallel finishes immediately")
	}
}

func TestTimeScaleAction(t *testing.T) {
	child := newLeaf(1)
	ts := &TimeScaleAction{}
	ts.Init(2, child)

	if !ts.Act(0.5) {
		t.Fatal("double speed should finish a 1s child in 0.5s")
	}
	if child.elapsed != 1 {
		t.Errorf("child elapsed: got %v, want 1", child.elapsed)
	}

	ts.Reset()
	if ts.Scale() != 1 || ts.Wrapped() != nil {
		t.Error("Reset should restore scale 1 and drop the child")
	}
	if !ts.Act(1) {
		t.Error("time scale without a child finishes immediately")
	}
}

func TestRepeatForeverAction(t *testing.T) {
	child := newLeaf(0.5)
	r := &RepeatForeverAction{}
	r.Init(child)

	for i := 1; i <= 3; i++ {
		if r.Act(0.5) {
			t.Fatal("forever never finishes")
		}
		if r.Loops() != i {
			t.Errorf("Loops: got %d, want %d", r.Loops(), i)
		}
		if child.elapsed != 0 {
			t.Error("child should restart after each loop")
		}
	}
}

func TestRunAction(t *testing.T) {
	calls := 0
	r := &RunAction{}
	r.Init(func() { calls++ })

	if !r.Act(0) || !r.Act(0) {
		t.Fatal("run finishes immediately")
	}
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
	r.Restart()
	r.Act(0)
	if calls != 2 {
		t.Errorf("Restart should allow another run, got %d calls", calls)
	}
}

func TestActorPropagation(t *testing.T) {
	actor := &testActor{}
	inner := newLeaf(1)
	late := newLeaf(1)

	delay := &DelayAction{}
	delay.Init(0, inner)
	seq := &SequenceAction{}
	seq.Add(delay)

	seq.SetActor(actor)
	if inner.Actor() != actor {
		t.Error("SetActor should reach nested children")
	}

	seq.Add(late)
	if late.Actor() != actor {
		t.Error("children added later inherit the actor")
	}

	seq.SetActor(nil)
	if inner.Actor() != nil || late.Actor() != nil {
		t.Error("detaching should reach every child")
	}
}

func TestConstructors(t *testing.T) {
	calls := 0
	seq := Sequence(
		Delay(0.5, nil),
		Parallel(Run(func() { calls++ }), TimeScale(1, Delay(0.25, nil))),
	)
	defer Release(seq)

	if got := Duration(seq); got != 0.75 {
		t.Errorf("Duration: got %v, want 0.75", got)
	}

	finished := false
	for i := 0; i < 10 && !finished; i++ {
		finished = seq.Act(0.25)
	}
	if !finished || calls != 1 {
		t.Errorf("finished=%v calls=%d, want true and 1", finished, calls)
	}

	forever := Forever(Run(func() { calls++ }))
	defer Release(forever)
	forever.Act(0)
	forever.Act(0)
	if calls != 3 {
		t.Errorf("Forever should rerun its child, got %d calls", calls)
	}
}
