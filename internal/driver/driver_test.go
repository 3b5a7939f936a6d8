package driver

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/fkcurrie/led-animator/internal/types"
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

func TestDim(t *testing.T) {
	src := []pixel.RGB{{R: 255, G: 128, B: 0}, {R: 10, G: 20, B: 30}}

	tests := []struct {
		name       string
		brightness uint8
		want       []pixel.RGB
	}{
		{"full", 255, src},
		{"unset", 0, src},
		{"half", 127, []pixel.RGB{{R: 127, G: 64, B: 0}, {R: 5, G: 10, B: 15}}},
		{"quarter", 63, []pixel.RGB{{R: 63, G: 32, B: 0}, {R: 2, G: 5, B: 7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dim(nil, src, tt.brightness)
			if len(got) != len(tt.want) {
				t.Fatalf("dim() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dim()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPack(t *testing.T) {
	raw := make([]byte, 6)
	pack(raw, []pixel.RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}})
	want := []byte{1, 2, 3, 4, 5, 6}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("pack() = %v, want %v", raw, want)
		}
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(2)
	if r.Last() != nil {
		t.Error("Last() before Show is not nil")
	}

	buf := []pixel.RGB{{R: 1}}
	for i := 0; i < 3; i++ {
		buf[0].G = uint8(i)
		if err := r.Show(buf); err != nil {
			t.Fatalf("Show() error = %v", err)
		}
	}
	buf[0].G = 99

	frames := r.Frames()
	if len(frames) != 2 || frames[0][0].G != 1 || frames[1][0].G != 2 {
		t.Errorf("Frames() = %v, want the last two copies", frames)
	}
	if r.Last()[0].G != 2 {
		t.Errorf("Last() = %v", r.Last())
	}
	if r.Shown() != 3 {
		t.Errorf("Shown() = %d, want 3", r.Shown())
	}
}

func TestNewDriver(t *testing.T) {
	d, err := New(types.OutputConfig{Driver: "none"}, 4)
	if err != nil {
		t.Fatalf("New(none) error = %v", err)
	}
	if _, ok := d.(*Recorder); !ok {
		t.Errorf("New(none) = %T, want *Recorder", d)
	}
	if _, err := New(types.OutputConfig{Driver: "dmx"}, 4); err == nil {
		t.Error("New() of an unknown driver did not return error")
	}
}

// readMessage reads one Open Pixel Control message
func readMessage(t *testing.T, conn net.Conn) (channel byte, data []byte) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	header := make([]byte, 4)
	if _, err := io.ReadFull(conn, header); err != nil {
		t.Fatalf("failed to read header: %v", err)
	}
	data = make([]byte, int(header[2])<<8|int(header[3]))
	if _, err := io.ReadFull(conn, data); err != nil {
		t.Fatalf("failed to read data: %v", err)
	}
	return header[0], data
}

func TestOPC(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(accepted)
			return
		}
		accepted <- conn
	}()

	d, errOPC := NewOPC(ln.Addr().String(), 2, 255)
	if errOPC != nil {
		t.Fatalf("NewOPC() error = %v", errOPC)
	}
	conn, ok := <-accepted
	if !ok {
		t.Fatal("server did not accept a connection")
	}
	defer conn.Close()

	first := []pixel.RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}
	second := []pixel.RGB{{R: 9, G: 9, B: 9}, {}}

	for _, buf := range [][]pixel.RGB{first, first, second} {
		if err := d.Show(buf); err != nil {
			t.Fatalf("Show() error = %v", err)
		}
	}

	// The repeated frame is never sent, so the second message is the new one
	for _, want := range [][]byte{{1, 2, 3, 4, 5, 6}, {9, 9, 9, 0, 0, 0}} {
		channel, data := readMessage(t, conn)
		if channel != 2 {
			t.Errorf("channel = %d, want 2", channel)
		}
		if string(data) != string(want) {
			t.Errorf("data = %v, want %v", data, want)
		}
	}

	if err := d.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := d.Show(first); err == nil {
		t.Error("Show() after Close did not return error")
	}
}

func TestOPCConnectError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	if _, err := NewOPC(addr, 0, 255); err == nil {
		t.Error("NewOPC() without a server did not return error")
	}
}
