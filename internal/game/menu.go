package game

// MenuButton is one clickable entry of a menu.
type MenuButton struct {
	Label  string
	Action Button
}

// Menu is the set of widgets shown in Start and GameOver.
type Menu struct {
	Title   string
	Buttons []MenuButton
}

func startMenu() *Menu {
	return &Menu{
		Title: "Snake",
		Buttons: []MenuButton{
			{Label: "Play", Action: ButtonPlay},
			{Label: "Exit", Action: ButtonQuit},
		},
	}
}

func gameOverMenu() *Menu {
	return &Menu{
		Title: "Game over",
		Buttons: []MenuButton{
			{Label: "Play again", Action: ButtonPlay},
			{Label: "Exit", Action: ButtonQuit},
		},
	}
}
