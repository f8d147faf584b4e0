package main

import (
	"fmt"

	"github.com/npillmayer/schrodinger/box"
	"github.com/npillmayer/schrodinger/internal/samples"
	"github.com/pterm/pterm"
)

func printBoxes(boxes []box.Box[string]) {
	if len(boxes) == 0 {
		pterm.Println("no boxes")
		return
	}
	data := [][]string{
		{"Index", "State", "Box"},
	}
	for i, b := range boxes {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatState(b),
			b.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printScenarios() {
	data := [][]string{
		{"Scenario", "Result"},
	}
	for _, s := range samples.Scenarios() {
		data = append(data, []string{s.Name, s.Run()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatState[T any](b box.Box[T]) string {
	if b.IsEmpty() {
		return "empty"
	}
	return "present"
}
