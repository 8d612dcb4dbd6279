// cmd/web/main.go
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"go-angioplasty/internal/app"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/web"
)

// Веб-презентер урока: REST-степпер, SVG-кадры и WebSocket-рассылка
// кадров на каждую смену стадии.
func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP-сервера")
	seed := flag.Int64("seed", 0, "сид поля клеток; 0 — от времени")
	palettePath := flag.String("palette", "", "JSON-файл с переопределениями палитры")
	flag.Parse()

	palette := defs.DefaultPalette()
	if *palettePath != "" {
		loaded, err := defs.LoadPalette(*palettePath)
		if err != nil {
			log.Fatal(err)
		}
		palette = loaded
	}

	lesson := app.NewLesson(*seed)
	hub := web.NewHub()
	go hub.Run()

	server := web.NewServer(lesson, hub, palette)
	router := mux.NewRouter()
	server.RegisterRoutes(router)

	log.Printf("lesson server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatal(err)
	}
}
