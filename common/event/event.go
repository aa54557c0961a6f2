package event

import (
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	if err != nil {
		logger.Error.Printf("Error: %s\n%s", message, err.Error())
	} else {
		logger.Error.Printf("Error: %s", message)
	}
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}

func (s *Broker) SendWarning(message string) {
	logger.Warn.Printf("Warning: %s", message)
	s.SendCommandToTopic(api.ShowWarning, &api.WarningCommand{Message: message})
}
