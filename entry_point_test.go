package wcap_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/wcaptest"
)

func newBufferLogger(w io.Writer) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return l
}

func TestEntryPoint_ZeroValue(t *testing.T) {
	var ep wcap.EntryPoint[func(string) int]
	assert.False(t, ep.Supported())
	assert.Zero(t, ep.Addr())
	assert.Equal(t, wcap.Entry{}, ep.Entry())

	fn := ep.Func()
	require.NotNil(t, fn)
	err := unsupportedPanic(t, func() { fn("x") })
	assert.Contains(t, err.Error(), "never bound")

	_, tryErr := ep.TryFunc()
	assert.True(t, errors.Is(tryErr, wcap.ErrUnsupported))
}

func TestEntryPoint_TryFunc(t *testing.T) {
	syms := wcaptest.New()
	syms.Register("mathAdd", func(a, b int32) int32 { return a + b })
	tbl := loadMathTable(syms, syms.Options()...)

	add, err := tbl.add.TryFunc()
	require.NoError(t, err)
	assert.Equal(t, int32(3), add(1, 2))

	neg, err := tbl.neg.TryFunc()
	assert.Nil(t, neg)
	var uerr *wcap.UnsupportedError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "mathNeg", uerr.Name)
	assert.Equal(t, "wcap: math: mathNeg is not supported by the bound resolver", err.Error())
}

func TestEntry_String(t *testing.T) {
	assert.Equal(t, "vkFoo @ 0x1000", wcap.Entry{Name: "vkFoo", Addr: 0x1000}.String())
	assert.Equal(t, "vkBar (unsupported)", wcap.Entry{Name: "vkBar"}.String())
}
