package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/8SOAT-Team/use-case-lib/config"
	"github.com/8SOAT-Team/use-case-lib/transport/httpx"
	"github.com/8SOAT-Team/use-case-lib/usecase"
)

func main() {
	var (
		configFile string
		addr       string
		debug      bool
		err        error
	)

	flag.StringVar(&configFile, "config", "", "Configuration file")
	flag.StringVar(&addr, "addr", "localhost:8080", "Address to listen on")
	flag.BoolVar(&debug, "debug", false, "Debug mode")

	flag.Parse()

	var cfg config.Config

	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			panic(err)
		}
	}

	logger, err := newLogger(cfg, configFile != "", debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // nolint: errcheck

	renderer, err := cfg.Renderer.CreateRenderer()
	if err != nil {
		logger.Sugar().Fatalf("Error creating renderer: %v", err)
	}

	options := func(name string) []usecase.Option {
		return []usecase.Option{
			usecase.WithLogger(logger.Named(name)),
			usecase.WithRenderer(renderer),
			usecase.WithSettings(cfg.Settings(name)),
		}
	}

	router := newRouter(NoteService{Repository: &InMemoryNoteRepository{}}, options)

	logger.Sugar().Infof("Listening on %s", addr)

	err = http.ListenAndServe(addr, router)
	if err != nil {
		logger.Sugar().Infof("Error serving: %v", err)
	}
}

func newLogger(cfg config.Config, configured bool, debug bool) (*zap.Logger, error) {
	if configured {
		if debug {
			cfg.Logger.Development = true
			cfg.Logger.Level = "debug"
		}

		return cfg.Logger.CreateLogger()
	}

	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func newRouter(service NoteService, options func(name string) []usecase.Option) *mux.Router {
	createNote := usecase.NewFactory[CreateNoteCommand, *Note](
		"createNote",
		usecase.HandlerFunc[CreateNoteCommand, *Note](service.CreateNote),
		options("createNote")...,
	)
	getNote := usecase.NewFactory[GetNoteCommand, *Note](
		"getNote",
		usecase.HandlerFunc[GetNoteCommand, *Note](service.GetNote),
		options("getNote")...,
	)
	listNotes := usecase.NewFactory[ListNotesCommand, []Note](
		"listNotes",
		usecase.HandlerFunc[ListNotesCommand, []Note](service.ListNotes),
		options("listNotes")...,
	)

	router := mux.NewRouter()
	router.Path("/notes").Methods("POST").Handler(httpx.Handler(createNote, httpx.DecodeJSON[CreateNoteCommand]))
	router.Path("/notes").Methods("GET").Handler(httpx.Handler(listNotes, httpx.DecodeQuery[ListNotesCommand]))
	router.Path("/notes/{id}").Methods("GET").Handler(httpx.Handler(getNote, httpx.DecodeQuery[GetNoteCommand]))

	return router
}
