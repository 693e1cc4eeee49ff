package quiz_test

import (
	"errors"
	"testing"

	"github.com/dawood1123/Lumina-study-app/internal/assistant"
	"github.com/dawood1123/Lumina-study-app/internal/quiz"
)

func questions(correct ...int) []assistant.Question {
	qs := make([]assistant.Question, len(correct))
	for i, c := range correct {
		qs[i] = assistant.Question{
			Question:     "Question?",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: c,
			Explanation:  "because",
		}
	}
	return qs
}

func TestRunnerScoring(t *testing.T) {
	t.Run("AllCorrect", func(t *testing.T) {
		qs := questions(0, 1, 2, 3, 0)
		r := quiz.NewRunner(qs)
		for _, q := range qs {
			r.SelectAnswer(q.CorrectIndex)
			r.Advance()
		}

		s, err := r.Summary()
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}
		if s.Score != 5 || s.Total != 5 {
			t.Errorf("expected 5/5, got %d/%d", s.Score, s.Total)
		}
		if !s.Perfect || s.Message != quiz.PerfectMessage {
			t.Errorf("expected perfect message, got %+v", s)
		}
	})

	t.Run("AllWrong", func(t *testing.T) {
		qs := questions(0, 1, 2)
		r := quiz.NewRunner(qs)
		for _, q := range qs {
			r.SelectAnswer((q.CorrectIndex + 1) % 4)
			r.Advance()
		}

		s, err := r.Summary()
		if err != nil {
			t.Fatalf("Summary failed: %v", err)
		}
		if s.Score != 0 {
			t.Errorf("expected score 0, got %d", s.Score)
		}
		if s.Perfect || s.Message != quiz.EffortMessage {
			t.Errorf("expected effort message, got %+v", s)
		}
	})

	t.Run("MixedThreeQuestions", func(t *testing.T) {
		r := quiz.NewRunner(questions(2, 0, 1))
		answers := []int{2, 3, 1}

		advances := 0
		var st quiz.State
		for _, a := range answers {
			r.SelectAnswer(a)
			st = r.Advance()
			advances++
		}

		if advances != 3 || !st.Complete {
			t.Fatalf("expected completion after 3 advances, complete=%v", st.Complete)
		}
		s, _ := r.Summary()
		if s.Score != 2 {
			t.Errorf("expected score 2, got %d", s.Score)
		}
	})
}

func TestRunnerLocking(t *testing.T) {
	r := quiz.NewRunner(questions(1, 1))

	first := r.SelectAnswer(1)
	second := r.SelectAnswer(3)

	if first.Score != 1 || second.Score != 1 {
		t.Errorf("score changed on second answer: %d -> %d", first.Score, second.Score)
	}
	if second.Selected == nil || *second.Selected != 1 {
		t.Errorf("selection changed on second answer: %v", second.Selected)
	}
}

func TestRunnerAdvanceBeforeAnswer(t *testing.T) {
	r := quiz.NewRunner(questions(0, 0))

	before := r.State()
	after := r.Advance()

	if after.Index != before.Index || after.Answered || after.Complete {
		t.Errorf("advance before answering changed state: %+v", after)
	}
}

func TestRunnerProgression(t *testing.T) {
	r := quiz.NewRunner(questions(0, 1))

	st := r.State()
	if st.Index != 0 || st.Total != 2 || st.Progress != 50 || st.IsLast {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if st.Explanation != "" {
		t.Error("explanation must stay hidden before answering")
	}
	for _, o := range st.Options {
		if o.Status != quiz.OptionPending {
			t.Errorf("option %s should be pending, got %s", o.Letter, o.Status)
		}
	}

	st = r.SelectAnswer(2)
	if st.Options[0].Status != quiz.OptionCorrect {
		t.Errorf("correct option not highlighted: %s", st.Options[0].Status)
	}
	if st.Options[2].Status != quiz.OptionIncorrect {
		t.Errorf("wrong selection not marked: %s", st.Options[2].Status)
	}
	if st.Options[1].Status != quiz.OptionNeutral {
		t.Errorf("untouched option should be neutral: %s", st.Options[1].Status)
	}
	if st.Explanation != "because" {
		t.Errorf("explanation should show after answering, got %q", st.Explanation)
	}

	st = r.Advance()
	if st.Index != 1 || st.Answered || st.Selected != nil || !st.IsLast || st.Progress != 100 {
		t.Errorf("unexpected state after advance: %+v", st)
	}

	if _, err := r.Summary(); !errors.Is(err, quiz.ErrNotComplete) {
		t.Errorf("expected ErrNotComplete before the end, got %v", err)
	}

	r.SelectAnswer(1)
	st = r.Advance()
	if !st.Complete || st.Index != 1 {
		t.Errorf("expected finished on last question, got %+v", st)
	}

	st = r.Advance()
	if st.Score != 1 || !st.Complete {
		t.Errorf("finished quiz must be frozen, got %+v", st)
	}
	st = r.SelectAnswer(0)
	if st.Score != 1 {
		t.Errorf("answering after finish changed the score: %d", st.Score)
	}
}

func TestRunnerBadInput(t *testing.T) {
	t.Run("OutOfRangeSelection", func(t *testing.T) {
		r := quiz.NewRunner(questions(0))
		st := r.SelectAnswer(7)
		if st.Answered {
			t.Error("out of range selection must be ignored")
		}
	})

	t.Run("CorrectIndexOutOfRange", func(t *testing.T) {
		qs := questions(9)
		r := quiz.NewRunner(qs)
		st := r.SelectAnswer(0)
		for _, o := range st.Options {
			if o.Status == quiz.OptionCorrect {
				t.Errorf("no option should be highlighted correct, got %s", o.Letter)
			}
		}
		if st.Score != 0 {
			t.Errorf("expected score 0, got %d", st.Score)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		r := quiz.NewRunner(nil)
		st := r.State()
		if !st.Complete || st.Total != 0 {
			t.Errorf("empty quiz should be complete, got %+v", st)
		}
		s, err := r.Summary()
		if err != nil || s.Perfect {
			t.Errorf("empty quiz summary should not be perfect: %+v %v", s, err)
		}
	})
}

func TestLetter(t *testing.T) {
	for i, want := range []string{"A", "B", "C", "D"} {
		if got := quiz.Letter(i); got != want {
			t.Errorf("Letter(%d) = %q, want %q", i, got, want)
		}
	}
}
