package shos

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	o, _ := NewOrbit(1, 3, 4, 10)
	m.SetElements(o)
	m.Observe(State{1, 4.5, -2})
	m.Observe(State{2, 4.25, -1})
	if v := testutil.ToFloat64(m.ticks); v != 2 {
		t.Fatalf("ticks=%f", v)
	}
	if x, y := testutil.ToFloat64(m.positionX), testutil.ToFloat64(m.positionY); x != 4.25 || y != -1 {
		t.Fatalf("position (%f, %f)", x, y)
	}
	if e := testutil.ToFloat64(m.eccentricity); e != 0.5 {
		t.Fatalf("eccentricity=%f", e)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Fatal("registering twice should fail")
	}

	path := filepath.Join(t.TempDir(), "orbit.prom")
	if err := WriteToTextfile(path, reg); err != nil {
		t.Fatalf("err %s", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !strings.Contains(string(data), "shos_orbit_ticks_total 2") {
		t.Fatalf("unexpected textfile:\n%s", data)
	}
}
