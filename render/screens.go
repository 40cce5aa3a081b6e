package render

const DefaultSimulatorName = "Assetto Corsa"

func drawCentered(c Canvas, f Font, text string, baseline float64) {
	c.SetFont(f)
	m := c.MeasureText(text)
	c.FillText(text, (LogicalWidth-m.Width)/2, baseline)
}

func drawIdle(c Canvas) {
	c.SetColor(Grey)
	drawCentered(c, Sans(11, false), "Telemetry not running", LogicalHeight/2+4)
	c.SetColor(White)
}

func drawDisconnected(c Canvas) {
	c.SetColor(White)
	drawCentered(c, Sans(18, true), "DISCONNECTED", LogicalHeight/2)
	drawCentered(c, Sans(10, false), "Device lost", LogicalHeight/2+16)
}

func drawSimulatorNotRunning(c Canvas, name string) {
	const top = LogicalHeight/2 - 4

	c.SetColor(White)
	drawCentered(c, Sans(16, true), name, top)
	drawCentered(c, Sans(14, true), "not running", top+18)
}
