package mail

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderOTP(t *testing.T) {
	text, html, err := renderOTP("a1b2c3d4e5f6", 5*time.Minute)
	require.NoError(t, err)
	require.Contains(t, text, "a1b2c3d4e5f6")
	require.Contains(t, text, "5 minutes")
	require.Contains(t, html, "a1b2c3d4e5f6")
	require.Contains(t, html, "<html")
}

func TestBuildOTPMessage(t *testing.T) {
	msg, err := buildOTPMessage("Magnolia <no-reply@magnolia.local>", "alice@x.io", "a1b2c3d4e5f6", 5*time.Minute)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "alice@x.io")
	require.Contains(t, buf.String(), otpSubject)

	_, err = buildOTPMessage("Magnolia <no-reply@magnolia.local>", "not an address", "x", time.Minute)
	require.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	require.NoError(t, LogMailer{}.SendOTP(context.Background(), "alice@x.io", "code", time.Minute))
}
