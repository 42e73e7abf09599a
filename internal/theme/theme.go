package theme

type Theme interface {
	RenderSet(index int, name string) string
	RenderMap(index int, title string, notes int) string
	RenderHit(column int, text string) string
	RenderMiss(column int, text string) string
	RenderLamp(column int, on bool) string
	RenderAccuracy(text string) string
}
