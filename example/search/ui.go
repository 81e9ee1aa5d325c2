// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"log"

	"github.com/sahilm/fuzzy"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/pullup"
	"gioui.org/pullup/sheet"
)

var cities = []string{
	"Amsterdam", "Dublin", "London", "Milan",
	"Paris", "Reykjavik", "Rome", "Turin",
}

// UI is the state of the demo.
type UI struct {
	theme  *material.Theme
	cfg    *pullup.Config
	sheet  sheet.Sheet
	search widget.Editor
	list   sheet.List
	icon   *widget.Icon
	// matches indexes cities in display order.
	matches  []int
	clicks   []widget.Clickable
	selected string
	focused  bool
}

func newUI(cfg *pullup.Config) (*UI, error) {
	icon, err := widget.NewIcon(icons.ActionSearch)
	if err != nil {
		return nil, err
	}
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := &UI{
		theme:  th,
		cfg:    cfg,
		icon:   icon,
		clicks: make([]widget.Clickable, len(cities)),
	}
	u.search.SingleLine = true
	u.search.Submit = true
	u.list.List = &layout.List{Axis: layout.Vertical}
	u.sheet.Content = &u.list
	u.sheet.Delegate = pullup.Funcs{
		WillMoveFunc: func(p float32) { log.Printf("sheet: moving to %v", p) },
		DidMoveFunc:  func(p float32) { log.Printf("sheet: rests at %v", p) },
	}
	u.filter("")
	return u, nil
}

// filter updates the matches for the search pattern.
func (u *UI) filter(pattern string) {
	u.matches = u.matches[:0]
	if pattern == "" {
		for i := range cities {
			u.matches = append(u.matches, i)
		}
		return
	}
	for _, m := range fuzzy.Find(pattern, cities) {
		u.matches = append(u.matches, m.Index)
	}
}

func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	if !u.sheet.Attached() && u.sheet.Config.PortraitSize == (f32.Point{}) {
		if u.cfg != nil {
			u.sheet.Config = *u.cfg
		} else {
			s := gtx.Constraints.Max
			u.sheet.Config = defaultConfig(f32.Pt(float32(gtx.Metric.PxToDp(s.X)), float32(gtx.Metric.PxToDp(s.Y))))
		}
	}
	u.update(gtx)
	u.layoutMap(gtx)
	return u.sheet.Layout(gtx, u.layoutPanel)
}

func (u *UI) update(gtx layout.Context) {
	for {
		e, ok := u.search.Update(gtx)
		if !ok {
			break
		}
		switch e := e.(type) {
		case widget.ChangeEvent:
			u.filter(u.search.Text())
		case widget.SubmitEvent:
			if len(u.matches) > 0 {
				u.choose(gtx, cities[u.matches[0]])
			} else {
				log.Printf("search: no match for %q", e.Text)
			}
		}
	}
	focused := gtx.Focused(&u.search)
	if focused && !u.focused && u.sheet.Attached() {
		u.sheet.MoveTo(u.sheet.Points().Last(), true, nil)
	}
	u.focused = focused
	for _, i := range u.matches {
		if u.clicks[i].Clicked(gtx) {
			u.choose(gtx, cities[i])
		}
	}
}

// choose selects a city and lowers the sheet to reveal the map.
func (u *UI) choose(gtx layout.Context, city string) {
	u.selected = city
	gtx.Execute(key.FocusCmd{})
	u.focused = false
	p := u.sheet.Points()
	mid := p.First()
	if len(p) > 2 {
		mid = p[len(p)/2]
	}
	u.sheet.MoveTo(mid, true, func() {
		log.Printf("search: showing %s", city)
	})
}

func (u *UI) layoutMap(gtx layout.Context) {
	paint.Fill(gtx.Ops, color.NRGBA(colornames.Lightsteelblue))
	// Land masses.
	blocks := []struct {
		r image.Rectangle
		c color.RGBA
	}{
		{image.Rect(0, 0, 240, 300), colornames.Palegreen},
		{image.Rect(160, 360, 420, 620), colornames.Darkseagreen},
		{image.Rect(40, 520, 200, 900), colornames.Khaki},
	}
	for _, b := range blocks {
		r := image.Rectangle{
			Min: image.Pt(gtx.Dp(unit.Dp(b.r.Min.X)), gtx.Dp(unit.Dp(b.r.Min.Y))),
			Max: image.Pt(gtx.Dp(unit.Dp(b.r.Max.X)), gtx.Dp(unit.Dp(b.r.Max.Y))),
		}
		paint.FillShape(gtx.Ops, color.NRGBA(b.c), clip.Rect(r).Op())
	}
	if u.selected == "" {
		return
	}
	layout.N.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(48)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			l := material.H4(u.theme, u.selected)
			l.Color = color.NRGBA(colornames.Darkslategray)
			return l.Layout(gtx)
		})
	})
}

func (u *UI) layoutPanel(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	rr := gtx.Dp(unit.Dp(12))
	paint.FillShape(gtx.Ops, color.NRGBA(colornames.White), clip.UniformRRect(image.Rectangle{Max: size}, rr).Op(gtx.Ops))
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(u.layoutHandle),
		layout.Rigid(u.layoutSearch),
		layout.Flexed(1, u.layoutList),
	)
	return layout.Dimensions{Size: size}
}

func (u *UI) layoutHandle(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.N.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			sz := image.Pt(gtx.Dp(unit.Dp(36)), gtx.Dp(unit.Dp(5)))
			paint.FillShape(gtx.Ops, color.NRGBA(colornames.Lightgray), clip.UniformRRect(image.Rectangle{Max: sz}, sz.Y/2).Op(gtx.Ops))
			return layout.Dimensions{Size: sz}
		})
	})
}

func (u *UI) layoutSearch(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Bottom: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{}
				gtx.Constraints.Max = image.Pt(gtx.Dp(unit.Dp(24)), gtx.Dp(unit.Dp(24)))
				return u.icon.Layout(gtx, u.theme.Fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, material.Editor(u.theme, &u.search, "Search for a place").Layout),
		)
	})
}

func (u *UI) layoutList(gtx layout.Context) layout.Dimensions {
	return u.list.Layout(gtx, len(u.matches), func(gtx layout.Context, i int) layout.Dimensions {
		city := cities[u.matches[i]]
		return material.Clickable(gtx, &u.clicks[u.matches[i]], func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, material.Body1(u.theme, city).Layout)
		})
	})
}
