package common

import (
	"flag"
)

type Params struct {
	databaseFile  string
	logLevel      string
	eventBusQueue int
	command       string
	commandArgs   []string
}

func NewEmptyParams() *Params {
	return &Params{
		databaseFile:  "",
		logLevel:      "",
		eventBusQueue: 0,
		command:       "",
		commandArgs:   []string{},
	}
}

func ParseParams() *Params {
	databaseFile := flag.String("databaseFile", "gallery.db", "SQLite database file for the image collection")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	eventBusQueue := flag.Int("eventBusQueue", 100, "Queue size for the event bus")

	flag.Parse()
	command := flag.Arg(0)
	var commandArgs []string
	if flag.NArg() > 1 {
		commandArgs = flag.Args()[1:]
	}

	return &Params{
		databaseFile:  *databaseFile,
		logLevel:      *logLevel,
		eventBusQueue: *eventBusQueue,
		command:       command,
		commandArgs:   commandArgs,
	}
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) EventBusQueue() int {
	return s.eventBusQueue
}

func (s *Params) Command() string {
	return s.command
}

func (s *Params) CommandArgs() []string {
	return s.commandArgs
}
