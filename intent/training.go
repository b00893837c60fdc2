package intent

// DefaultTrainingSet returns the hand-authored seed corpus. The command
// vocabulary is small and near-literal, so a few phrasings per label are
// enough for the bag-of-words model to generalize over paraphrases. The
// unknown bucket gives the model a genuine negative class instead of relying
// on a confidence floor alone.
func DefaultTrainingSet() []TrainingExample {
	return []TrainingExample{
		{Text: "start interview", Label: LabelStartInterview},
		{Text: "begin interview", Label: LabelStartInterview},
		{Text: "let's start", Label: LabelStartInterview},
		{Text: "start the interview", Label: LabelStartInterview},
		{Text: "begin the interview", Label: LabelStartInterview},
		{Text: "ready to start", Label: LabelStartInterview},
		{Text: "start now", Label: LabelStartInterview},

		{Text: "next question", Label: LabelNextQuestion},
		{Text: "next", Label: LabelNextQuestion},
		{Text: "continue", Label: LabelNextQuestion},
		{Text: "move to next", Label: LabelNextQuestion},
		{Text: "next please", Label: LabelNextQuestion},
		{Text: "ask next question", Label: LabelNextQuestion},
		{Text: "proceed to next", Label: LabelNextQuestion},

		{Text: "repeat question", Label: LabelRepeatQuestion},
		{Text: "repeat", Label: LabelRepeatQuestion},
		{Text: "say again", Label: LabelRepeatQuestion},
		{Text: "can you repeat", Label: LabelRepeatQuestion},
		{Text: "repeat the question", Label: LabelRepeatQuestion},
		{Text: "what was the question", Label: LabelRepeatQuestion},

		{Text: "evaluate my answer", Label: LabelEvaluateAnswer},
		{Text: "how did I do", Label: LabelEvaluateAnswer},
		{Text: "rate my answer", Label: LabelEvaluateAnswer},
		{Text: "feedback", Label: LabelEvaluateAnswer},
		{Text: "evaluate answer", Label: LabelEvaluateAnswer},
		{Text: "assess my response", Label: LabelEvaluateAnswer},

		{Text: "end interview", Label: LabelEndInterview},
		{Text: "finish interview", Label: LabelEndInterview},
		{Text: "stop interview", Label: LabelEndInterview},
		{Text: "end now", Label: LabelEndInterview},
		{Text: "conclude interview", Label: LabelEndInterview},
		{Text: "finish up", Label: LabelEndInterview},

		{Text: "help", Label: LabelHelp},
		{Text: "what can you do", Label: LabelHelp},
		{Text: "commands", Label: LabelHelp},
		{Text: "assistance", Label: LabelHelp},
		{Text: "guide me", Label: LabelHelp},
		{Text: "how to use", Label: LabelHelp},
		{Text: "what are the options", Label: LabelHelp},

		{Text: "prepare questions on python", Label: LabelPrepareQuestions},
		{Text: "create interview questions about data science", Label: LabelPrepareQuestions},
		{Text: "ask questions for frontend", Label: LabelPrepareQuestions},
		{Text: "generate questions for machine learning", Label: LabelPrepareQuestions},
		{Text: "prepare questions on algorithms", Label: LabelPrepareQuestions},
		{Text: "make some interview questions about sql", Label: LabelPrepareQuestions},
		{Text: "give me questions on react", Label: LabelPrepareQuestions},

		{Text: "hello", Label: LabelUnknown},
		{Text: "good morning", Label: LabelUnknown},
		{Text: "thank you", Label: LabelUnknown},
		{Text: "yes", Label: LabelUnknown},
		{Text: "no", Label: LabelUnknown},
		{Text: "maybe", Label: LabelUnknown},
		{Text: "I think", Label: LabelUnknown},
		{Text: "probably", Label: LabelUnknown},
		{Text: "definitely", Label: LabelUnknown},
		{Text: "absolutely", Label: LabelUnknown},
	}
}
