package firebase

import (
	"net"
	"strings"
	"testing"
)

func TestSanitizeFilenameNormal(t *testing.T) {
	result := sanitizeFilename("pilau_plate-1.jpg")
	if result != "pilau_plate-1.jpg" {
		t.Errorf("expected 'pilau_plate-1.jpg', got '%s'", result)
	}
}

func TestSanitizeFilenameSpecialChars(t *testing.T) {
	result := sanitizeFilename("my dish (1)@#$.jpg")
	if strings.ContainsAny(result, " ()@#$") {
		t.Errorf("special chars not replaced: '%s'", result)
	}
}

func TestSanitizeFilenameTooLong(t *testing.T) {
	long := strings.Repeat("a", 200)
	result := sanitizeFilename(long)
	if len(result) != 100 {
		t.Errorf("expected length 100, got %d", len(result))
	}
}

func TestSanitizeFilenameEmpty(t *testing.T) {
	if result := sanitizeFilename(""); result != "file" {
		t.Errorf("expected 'file', got '%s'", result)
	}
}

func TestSanitizeFilenameDots(t *testing.T) {
	if sanitizeFilename(".") != "file" {
		t.Error("single dot should become 'file'")
	}
	if sanitizeFilename("..") != "file" {
		t.Error("double dots should become 'file'")
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip       string
		expected bool
	}{
		{"10.0.0.1", true},
		{"172.16.0.1", true},
		{"192.168.1.1", true},
		{"127.0.0.1", true},
		{"169.254.1.1", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
	}
	for _, tc := range tests {
		ip := net.ParseIP(tc.ip)
		if result := isPrivateIP(ip); result != tc.expected {
			t.Errorf("isPrivateIP(%s) = %v, want %v", tc.ip, result, tc.expected)
		}
	}
}

func TestIsPrivateIPv6(t *testing.T) {
	if !isPrivateIP(net.ParseIP("::1")) {
		t.Error("::1 should be private")
	}
}

func TestValidateExternalURLInvalidScheme(t *testing.T) {
	if err := validateExternalURL("ftp://example.com/image.jpg"); err == nil {
		t.Error("expected error for ftp scheme")
	}
}

func TestValidateExternalURLLocalhost(t *testing.T) {
	if err := validateExternalURL("http://localhost/image.jpg"); err == nil {
		t.Error("expected error for localhost")
	}
}

func TestValidateExternalURLEmptyHost(t *testing.T) {
	if err := validateExternalURL("http:///path"); err == nil {
		t.Error("expected error for empty host")
	}
}

func TestValidateExternalURLValidHTTPS(t *testing.T) {
	// Requires DNS resolution, so skip when the network is unavailable
	if err := validateExternalURL("https://example.com/image.jpg"); err != nil {
		t.Skipf("skipping due to DNS resolution requirement: %v", err)
	}
}
