package xcept

import (
	"testing"
)

func BenchmarkReportUnaccepted(b *testing.B) {
	s := NewStack()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Report(s, i)
	}
}

func BenchmarkReportDeepScan(b *testing.B) {
	s := NewStack()
	var target Storage[int]
	gt := s.Push(&target)
	others := make([]Storage[string], 32)
	guards := make([]Guard, len(others))
	for i := range others {
		guards[i] = s.Push(&others[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Report(s, i)
	}
	b.StopTimer()
	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Release()
	}
	gt.Release()
}

func BenchmarkTryOrHandleOne(b *testing.B) {
	s := NewStack()
	produce := func() Result[int] { return Fail[int](s, int32(1)) }
	handle := func(e int32) Result[int] { return Ok(int(e)) }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TryOrHandleOne(s, produce, handle)
	}
}

func BenchmarkTryOrHandleThreeCases(b *testing.B) {
	s := NewStack()
	h := NewBuilder(On(func(int32) Result[int] { return Ok(1) })).
		Handle(On(func(string) Result[int] { return Ok(2) })).
		Handle(On(func(bool) Result[int] { return Ok(3) })).
		Build()
	produce := func() Result[int] { return Fail[int](s, true) }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TryOrHandle(s, produce, h)
	}
}

func BenchmarkOkPath(b *testing.B) {
	s := NewStack()
	produce := func() Result[int] { return Ok(1) }
	handle := func(int32) Result[int] { return Ok(0) }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = TryOrHandleOne(s, produce, handle)
	}
}
