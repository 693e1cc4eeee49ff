package quiz

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(source RunnerSource) *QuizContainer {
	return &QuizContainer{
		Handler: NewHandler(source),
	}
}
