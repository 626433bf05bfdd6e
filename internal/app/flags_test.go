package app

import (
	"flag"
	"io"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("fire", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "3", "-tps", "20", "-seed", "7", "-set", "w=64", "-set", "palette = gas"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 3 || cfg.TPS != 20 || cfg.Seed != 7 || cfg.Sim != "fire" {
		t.Fatalf("config = %+v", cfg)
	}

	sim := cfg.SimConfig()
	want := map[string]string{"seed": "7", "w": "64", "palette": "gas"}
	for k, v := range want {
		if sim[k] != v {
			t.Fatalf("SimConfig()[%q] = %q, expected %q", k, sim[k], v)
		}
	}
}

func TestSetOverridesSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = KVList{"seed=99"}
	if got := cfg.SimConfig()["seed"]; got != "99" {
		t.Fatalf("seed = %q, expected -set to win", got)
	}
}

func TestKVListRejectsBareValue(t *testing.T) {
	var l KVList
	if err := l.Set("palette"); err == nil {
		t.Fatal("value without '=' should be rejected")
	}
	if err := l.Set("a=b"); err != nil || l.String() != "a=b" {
		t.Fatalf("Set(a=b) = %v, list %q", err, l.String())
	}
}

func TestEffectiveSeed(t *testing.T) {
	cases := []struct {
		name string
		set  KVList
		want int64
	}{
		{"flag", nil, 42},
		{"override", KVList{"seed=99"}, 99},
		{"unparsable", KVList{"seed=hot"}, 42},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Set = c.set
			if got := cfg.EffectiveSeed(); got != c.want {
				t.Fatalf("EffectiveSeed() = %d, expected %d", got, c.want)
			}
		})
	}
}
