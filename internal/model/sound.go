package model

// Sound cues classify a committed move for the audio collaborator. The engine
// only classifies; playback belongs to the presentation layer.
const (
	SoundMove    = "move"
	SoundCapture = "capture"
	SoundCastle  = "castle"
	SoundPromote = "promote"
	SoundCheck   = "check"
	SoundGameEnd = "game-end"
)

func soundFor(move Move, status GameStatus) string {
	switch {
	case status == StatusCheckmate || status == StatusStalemate:
		return SoundGameEnd
	case status == StatusCheck:
		return SoundCheck
	case move.IsCastle:
		return SoundCastle
	case move.Promotion != "":
		return SoundPromote
	case move.CapturedPiece != nil:
		return SoundCapture
	}
	return SoundMove
}
