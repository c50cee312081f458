package server

import (
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"net/http"
	"time"
)

const (
	OpEncode = "encode"
	OpDecode = "decode"

	// maxCloseReason is the room left for the reason in a close frame.
	maxCloseReason = 123
	writeWait      = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	EnableCompression: true,
}

// Websocket upgrades the connection and answers every message with its
// encoding (op=encode) or decoding (op=decode). A failing decode closes the
// connection with the error as the close reason.
func (ce *CodecEndpoint) Websocket(w http.ResponseWriter, r *http.Request) {
	op := r.URL.Query().Get("op")
	if op == "" {
		op = OpEncode
	}
	if op != OpEncode && op != OpDecode {
		http.Error(w, "op must be encode or decode", http.StatusBadRequest)
		return
	}
	e := encodingFrom(r)

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Errorf("Socket upgrade failed: %+v", err)
		return
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Debugf("Could not close websocket: %v", err)
		}
	}()
	c.SetReadLimit(ce.MaxBodySize)

	log.Debugf("New %v %s websocket from %v", e, op, r.RemoteAddr)
	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debugf("Websocket read failed: %v", err)
			}
			return
		}

		if op == OpEncode {
			err = c.WriteMessage(websocket.TextMessage, []byte(e.Encode(msg)))
		} else {
			var data []byte
			if data, err = e.Decode(string(msg)); err != nil {
				reason := err.Error()
				if len(reason) > maxCloseReason {
					reason = reason[:maxCloseReason]
				}
				closeMsg := websocket.FormatCloseMessage(websocket.CloseUnsupportedData, reason)
				if err := c.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait)); err != nil {
					log.WithError(err).Debugf("Could not send close frame: %v", err)
				}
				return
			}
			err = c.WriteMessage(websocket.BinaryMessage, data)
		}
		if err != nil {
			log.WithError(err).Debugf("Websocket write failed: %v", err)
			return
		}
	}
}
