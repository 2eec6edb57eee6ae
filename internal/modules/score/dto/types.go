package dto

type RecordInput struct {
	Level int
}

type ScoreOutput struct {
	Key       string
	HighScore int
	Raw       string
	Present   bool
	Corrupt   bool
}
