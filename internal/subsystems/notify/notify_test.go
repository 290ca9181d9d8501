package notify

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/config"
)

func TestReadinessRequiresEnabledAndHost(t *testing.T) {
	s := New(config.NotifyConfig{Enabled: false})
	ready, msgs := s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.NotifyConfig{Enabled: true})
	ready, msgs = s.Readiness()
	assert.False(t, ready)
	assert.NotEmpty(t, msgs)

	s = New(config.NotifyConfig{Enabled: true, SMTP: config.NotifySMTP{Host: "smtp.example.com"}})
	ready, _ = s.Readiness()
	assert.True(t, ready)
}

func TestEnqueueBeforeInitIsRejected(t *testing.T) {
	s := New(config.NotifyConfig{Enabled: true, SMTP: config.NotifySMTP{Host: "smtp.example.com"}})
	assert.False(t, s.Enqueue(Message{Subject: "hi"}))
}

// TestDeliveryReachesPlaintextServer spins up a minimal SMTP stub accepting a
// single session and asserts the delivered message carries the subject and
// reaches DATA before the subsystem shuts down.
func TestDeliveryReachesPlaintextServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan string, 1)
	go serveOneSMTPSession(ln, received)

	addr := ln.Addr().(*net.TCPAddr)
	s := New(config.NotifyConfig{
		Enabled: true,
		SMTP: config.NotifySMTP{
			Host:        "127.0.0.1",
			Port:        int64(addr.Port),
			MaxRetries:  0,
			FromAddress: "hydrogen@example.com",
		},
	})
	require.NoError(t, s.Init())
	defer s.Shutdown()

	require.True(t, s.Enqueue(Message{Subject: "disk low", Body: "85% used"}))

	select {
	case data := <-received:
		assert.Contains(t, data, "disk low")
	case <-time.After(2 * time.Second):
		t.Fatal("smtp session was never completed")
	}
}

func serveOneSMTPSession(ln net.Listener, received chan<- string) {
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	r := bufio.NewReader(conn)
	w := conn

	fmt.Fprintf(w, "220 localhost ESMTP\r\n")
	var lines []string
	inData := false
	var dataBuf strings.Builder

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		if inData {
			if strings.TrimRight(line, "\r\n") == "." {
				fmt.Fprintf(w, "250 OK\r\n")
				lines = append(lines, dataBuf.String())
				received <- dataBuf.String()
				return
			}
			dataBuf.WriteString(line)
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "EHLO"), strings.HasPrefix(upper, "HELO"):
			fmt.Fprintf(w, "250 localhost\r\n")
		case strings.HasPrefix(upper, "MAIL FROM"):
			fmt.Fprintf(w, "250 OK\r\n")
		case strings.HasPrefix(upper, "RCPT TO"):
			fmt.Fprintf(w, "250 OK\r\n")
		case strings.HasPrefix(upper, "DATA"):
			fmt.Fprintf(w, "354 go ahead\r\n")
			inData = true
		case strings.HasPrefix(upper, "QUIT"):
			fmt.Fprintf(w, "221 bye\r\n")
			return
		default:
			fmt.Fprintf(w, "250 OK\r\n")
		}
	}
}
