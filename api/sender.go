package api

import "vincit.fi/image-gallery/api/apitype"

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
	SendWarning(message string)
}
