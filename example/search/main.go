// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program showing a pull-up search sheet over a map. Run with
// -config sheet.yaml to override the sheet configuration.

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
)

var configFile = flag.String("config", "", "YAML file with the sheet configuration")

func main() {
	flag.Parse()
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	u, err := newUI(cfg)
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Search"), app.Size(unit.Dp(windowSize.X), unit.Dp(windowSize.Y)))
		if err := loop(w, u); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, u *UI) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
