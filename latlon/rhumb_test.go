package latlon

import (
	"math"
	"testing"
)

func TestRhumbDistanceTo(t *testing.T) {
	p1 := LatLon{lat: 51.127, lon: 1.338}
	p2 := LatLon{lat: 50.964, lon: 1.853}
	d := Rhumb{}.DistanceTo(p1, p2)
	if math.Round(d) != 40308 {
		t.Errorf("{%f,%f}.rhumbDistanceTo({%f,%f}) = %f; want 40308", p1.lat, p1.lon, p2.lat, p2.lon, d)
	}
}

func TestRhumbBearingTo(t *testing.T) {
	p1 := LatLon{lat: 51.127, lon: 1.338}
	p2 := LatLon{lat: 50.964, lon: 1.853}
	b, o := Rhumb{}.BearingTo(p1, p2)
	if o != Ok || math.Round(b*10)/10 != 116.7 {
		t.Errorf("{%f,%f}.rhumbBearingTo({%f,%f}) = %f (%s); want 116.7", p1.lat, p1.lon, p2.lat, p2.lon, b, o)
	}

	b, o = Rhumb{}.BearingTo(p1, p1)
	if o != Coincident || !math.IsNaN(b) {
		t.Errorf("{%f,%f}.rhumbBearingTo(itself) = %f (%s); want NaN (coincident)", p1.lat, p1.lon, b, o)
	}
}

func TestRhumbDestinationPoint(t *testing.T) {
	p1 := LatLon{lat: 51.127, lon: 1.338}
	p2 := Rhumb{}.Destination(p1, 116.7, 40300.0)
	if math.Round(p2.lat*10000)/10000 != 50.9642 || math.Round(p2.lon*10000)/10000 != 1.8530 {
		t.Errorf("{%f,%f}.rhumbDestinationPoint(40300.0, 116.7) = {%f,%f}; want {50.9642,1.8530}", p1.lat, p1.lon, p2.lat, p2.lon)
	}
}

func TestRhumbDestinationPastPole(t *testing.T) {
	p1 := LatLon{lat: 89, lon: 0}
	p2 := Rhumb{}.Destination(p1, 0, toRadians(3)*R)
	if math.Abs(p2.lat-88) > 1e-9 {
		t.Errorf("{%f,%f}.rhumbDestinationPoint(3°, 0) = {%f,%f}; want lat 88", p1.lat, p1.lon, p2.lat, p2.lon)
	}
}

func TestRhumbEastWest(t *testing.T) {
	p1 := LatLon{lat: 10, lon: 0}
	p2 := LatLon{lat: 10, lon: 10}

	d := Rhumb{}.DistanceTo(p1, p2)
	want := toRadians(10) * math.Cos(toRadians(10)) * R
	if math.Abs(d-want) > 1 {
		t.Errorf("{%f,%f}.rhumbDistanceTo({%f,%f}) = %f; want %f", p1.lat, p1.lon, p2.lat, p2.lon, d, want)
	}

	b, _ := Rhumb{}.BearingTo(p1, p2)
	if math.Abs(b-90) > 1e-9 {
		t.Errorf("{%f,%f}.rhumbBearingTo({%f,%f}) = %f; want 90", p1.lat, p1.lon, p2.lat, p2.lon, b)
	}

	p3 := Rhumb{}.Destination(p1, 90, want)
	if math.Abs(p3.lat-10) > 1e-9 || math.Abs(p3.lon-10) > 1e-6 {
		t.Errorf("{%f,%f}.rhumbDestinationPoint(%f, 90) = {%f,%f}; want {10,10}", p1.lat, p1.lon, want, p3.lat, p3.lon)
	}

	m := Rhumb{}.MidpointTo(p1, p2)
	if math.Abs(m.lat-10) > 1e-9 || math.Abs(m.lon-5) > 1e-9 {
		t.Errorf("{%f,%f}.rhumbMidpointTo({%f,%f}) = {%f,%f}; want {10,5}", p1.lat, p1.lon, p2.lat, p2.lon, m.lat, m.lon)
	}
}

func TestRhumbAntiMeridian(t *testing.T) {
	p1 := LatLon{lat: 1, lon: 179}
	p2 := LatLon{lat: 1, lon: -179}

	d := Rhumb{}.DistanceTo(p1, p2)
	want := toRadians(2) * math.Cos(toRadians(1)) * R
	if math.Abs(d-want) > 1 {
		t.Errorf("{%f,%f}.rhumbDistanceTo({%f,%f}) = %f; want %f", p1.lat, p1.lon, p2.lat, p2.lon, d, want)
	}

	b, _ := Rhumb{}.BearingTo(p1, p2)
	if math.Abs(b-90) > 1e-9 {
		t.Errorf("{%f,%f}.rhumbBearingTo({%f,%f}) = %f; want 90", p1.lat, p1.lon, p2.lat, p2.lon, b)
	}

	m := Rhumb{}.MidpointTo(p1, p2)
	if math.Abs(math.Abs(m.lon)-180) > 1e-9 {
		t.Errorf("{%f,%f}.rhumbMidpointTo({%f,%f}) = {%f,%f}; want lon 180", p1.lat, p1.lon, p2.lat, p2.lon, m.lat, m.lon)
	}
}

func TestRhumbMidpointTo(t *testing.T) {
	p1 := LatLon{lat: 51.127, lon: 1.338}
	p2 := LatLon{lat: 50.964, lon: 1.853}
	m := Rhumb{}.MidpointTo(p1, p2)
	if math.Round(m.lat*10000)/10000 != 51.0455 || math.Round(m.lon*10000)/10000 != 1.5957 {
		t.Errorf("{%f,%f}.rhumbMidpointTo({%f,%f}) = {%f,%f}; want {51.0455,1.5957}", p1.lat, p1.lon, p2.lat, p2.lon, m.lat, m.lon)
	}
}

func TestRhumbFromPole(t *testing.T) {
	south := LatLon{lat: -90, lon: 0}
	p := Rhumb{}.Destination(south, 45, 1000e3)
	if math.IsNaN(p.lon) || p.lon != 0 || math.Round(p.lat*100)/100 != -83.64 {
		t.Errorf("{%f,%f}.rhumbDestinationPoint(1000e3, 45) = {%f,%f}; want {-83.64,0}", south.lat, south.lon, p.lat, p.lon)
	}

	north := LatLon{lat: 90, lon: 10}
	p = Rhumb{}.Destination(north, 180, R*π/180)
	if math.Round(p.lat*1000)/1000 != 89 || p.lon != 10 {
		t.Errorf("{%f,%f}.rhumbDestinationPoint(1°, 180) = {%f,%f}; want {89,10}", north.lat, north.lon, p.lat, p.lon)
	}

	d := Rhumb{}.DistanceTo(south, LatLon{lat: -80, lon: 50})
	if math.Round(d) != math.Round(R*10*π/180) {
		t.Errorf("{%f,%f}.rhumbDistanceTo({-80,50}) = %f; want %f", south.lat, south.lon, d, R*10*π/180)
	}
}

func TestRhumbBearingAtPole(t *testing.T) {
	for _, tc := range []struct {
		from, to LatLon
		bearing  float64
		outcome  Outcome
	}{
		{LatLon{lat: -90, lon: 0}, LatLon{lat: -90, lon: 10}, math.NaN(), Coincident},
		{LatLon{lat: 90, lon: 0}, LatLon{lat: 90, lon: 45}, math.NaN(), Coincident},
		{LatLon{lat: -90, lon: 0}, LatLon{lat: 10, lon: 20}, 0, Ok},
		{LatLon{lat: 10, lon: 20}, LatLon{lat: -90, lon: 0}, 180, Ok},
		{LatLon{lat: 10, lon: 20}, LatLon{lat: 90, lon: 170}, 0, Ok},
		{LatLon{lat: 90, lon: 0}, LatLon{lat: -90, lon: 0}, 180, Ok},
	} {
		b, o := Rhumb{}.BearingTo(tc.from, tc.to)
		want := b == tc.bearing || (math.IsNaN(b) && math.IsNaN(tc.bearing))
		if o != tc.outcome || !want {
			t.Errorf("{%f,%f}.rhumbBearingTo({%f,%f}) = %f (%s); want %f (%s)", tc.from.lat, tc.from.lon, tc.to.lat, tc.to.lon, b, o, tc.bearing, tc.outcome)
		}
	}
}
