package driver

import (
	"bytes"
	"sync"

	"github.com/cnf/structhash"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/kellydunn/go-opc"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// OPC sends frames to an Open Pixel Control server such as fadecandy.
// Frames identical to the last one sent are skipped.
type OPC struct {
	server     string
	channel    uint8
	brightness uint8

	mu     sync.Mutex
	client *opc.Client
	scaled []pixel.RGB
	last   []byte
	closed bool
}

// NewOPC connects to server, for example "localhost:7890"
func NewOPC(server string, channel uint8, brightness uint8) (*OPC, errors.Error) {
	oc := opc.NewClient()
	if errGo := oc.Connect("tcp", server); errGo != nil {
		return nil, errors.Wrap(errGo).With("url", server).With("stack", stack.Trace().TrimRuntime())
	}
	logger.Info("connected to opc server", "url", server, "channel", channel)

	return &OPC{
		server:     server,
		channel:    channel,
		brightness: brightness,
		client:     oc,
	}, nil
}

// Show sends buf unless it matches the previous frame
func (o *OPC) Show(buf []pixel.RGB) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return errors.New("opc driver is closed").With("url", o.server).With("stack", stack.Trace().TrimRuntime())
	}

	o.scaled = dim(o.scaled, buf, o.brightness)
	hash := structhash.Md5(o.scaled, 1)
	if bytes.Equal(o.last, hash) {
		return nil
	}

	m := opc.NewMessage(o.channel)
	m.SetLength(uint16(len(o.scaled) * 3))
	for i, c := range o.scaled {
		m.SetPixelColor(i, c.R, c.G, c.B)
	}

	if errGo := o.client.Send(m); errGo != nil {
		// Resend on the next frame even when it is unchanged
		o.last = nil
		return errors.Wrap(errGo).With("url", o.server).With("stack", stack.Trace().TrimRuntime())
	}
	o.last = hash
	return nil
}

// Close stops any further sends
func (o *OPC) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	return nil
}
