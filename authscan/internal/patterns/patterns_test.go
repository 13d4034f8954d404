package patterns

import (
	"reflect"
	"testing"
)

const syslogPrefix = "Mar  3 10:15:42 bastion sshd[2214]: "

func TestExtended_ClassifyLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Event
		wantOK bool
	}{
		{
			name:   "failed password for invalid user",
			line:   "Failed password for invalid user root from 10.0.0.5 port 22 ssh2",
			want:   Event{Category: FailedPassword, User: "root", IP: "10.0.0.5"},
			wantOK: true,
		},
		{
			name:   "failed password for valid user with syslog prefix",
			line:   syslogPrefix + "Failed password for alice from 192.168.1.20 port 51234 ssh2",
			want:   Event{Category: FailedPassword, User: "alice", IP: "192.168.1.20"},
			wantOK: true,
		},
		{
			name:   "failed publickey",
			line:   syslogPrefix + "Failed publickey for deploy from 203.0.113.9 port 40022 ssh2: RSA SHA256:abc",
			want:   Event{Category: FailedPublickey, User: "deploy", IP: "203.0.113.9"},
			wantOK: true,
		},
		{
			name:   "failed publickey for invalid user",
			line:   "Failed publickey for invalid user git from 198.51.100.7 port 1 ssh2",
			want:   Event{Category: FailedPublickey, User: "git", IP: "198.51.100.7"},
			wantOK: true,
		},
		{
			name:   "preauth close",
			line:   syslogPrefix + "Connection closed by authenticating user ec2-user 172.31.5.10 port 55012 [preauth]",
			want:   Event{Category: FailedPreauth, User: "ec2-user", IP: "172.31.5.10"},
			wantOK: true,
		},
		{
			name:   "accepted password",
			line:   syslogPrefix + "Accepted password for bob from 10.1.1.1 port 2222 ssh2",
			want:   Event{Category: AcceptedPassword, User: "bob", IP: "10.1.1.1"},
			wantOK: true,
		},
		{
			name:   "invalid user",
			line:   syslogPrefix + "Invalid user admin from 45.33.1.2 port 60000",
			want:   Event{Category: InvalidUser, User: "admin", IP: "45.33.1.2"},
			wantOK: true,
		},
		{
			name:   "ipv6 source",
			line:   "Invalid user oracle from 2001:db8::1 port 22",
			want:   Event{Category: InvalidUser, User: "oracle", IP: "2001:db8::1"},
			wantOK: true,
		},
		{
			name: "accepted publickey is not tracked",
			line: syslogPrefix + "Accepted publickey for bob from 10.1.1.1 port 2222 ssh2",
		},
		{
			name: "preauth close without port",
			line: "Connection closed by authenticating user bob 10.1.1.1 [preauth]",
		},
		{
			name: "unrelated line",
			line: syslogPrefix + "pam_unix(sshd:session): session opened for user bob",
		},
		{name: "empty line", line: ""},
	}

	set := Extended()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := set.ClassifyLine(tc.line)
			if ok != tc.wantOK {
				t.Fatalf("ClassifyLine() ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Errorf("ClassifyLine() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClassifyLine_FirstMatchWins(t *testing.T) {
	// Matches both failed_password and invalid_user; the earlier pattern wins.
	line := "Failed password for root from 1.1.1.1 port 22 ssh2 Invalid user bob from 2.2.2.2"
	got, ok := Extended().ClassifyLine(line)
	want := Event{Category: FailedPassword, User: "root", IP: "1.1.1.1"}
	if !ok || got != want {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, want)
	}
}

func TestBase_IgnoresExtendedCategories(t *testing.T) {
	set := Base()
	for _, line := range []string{
		"Failed publickey for deploy from 203.0.113.9 port 40022 ssh2",
		"Connection closed by authenticating user ec2-user 172.31.5.10 port 55012 [preauth]",
	} {
		if ev, ok := set.ClassifyLine(line); ok {
			t.Errorf("base set classified %q as %+v", line, ev)
		}
	}
	if ev, ok := set.ClassifyLine("Failed password for root from 10.0.0.5 port 22 ssh2"); !ok || ev.Category != FailedPassword {
		t.Errorf("base set missed failed password: %+v", ev)
	}
}

func TestSet_Categories(t *testing.T) {
	ext := Extended()
	want := []Category{FailedPassword, FailedPublickey, FailedPreauth, AcceptedPassword, InvalidUser}
	if got := ext.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Extended().Categories() = %v, want %v", got, want)
	}
	wantFail := []Category{FailedPassword, FailedPublickey, FailedPreauth, InvalidUser}
	if got := ext.FailureCategories(); !reflect.DeepEqual(got, wantFail) {
		t.Errorf("FailureCategories() = %v, want %v", got, wantFail)
	}

	base := Base()
	if base.Has(FailedPublickey) || base.Has(FailedPreauth) {
		t.Error("base set should not have publickey/preauth")
	}
	if !base.Has(InvalidUser) {
		t.Error("base set should have invalid_user")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"extended", "EXTENDED", ""} {
		s, err := Lookup(name)
		if err != nil || s.Name != SetExtended {
			t.Errorf("Lookup(%q) = %v, %v", name, s, err)
		}
	}
	s, err := Lookup("base")
	if err != nil || s.Name != SetBase {
		t.Errorf("Lookup(base) = %v, %v", s, err)
	}
	if _, err := Lookup("paranoid"); err == nil {
		t.Error("Lookup(paranoid) should fail")
	}
}
