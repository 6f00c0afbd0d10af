package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settingsPath := flag.String("settings", "", "camera settings yaml (watched for changes)")
	withInspector := flag.Bool("inspector", true, "enable the F1 settings inspector")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("pancam demo")

	game, err := NewGame(*settingsPath, *withInspector)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
