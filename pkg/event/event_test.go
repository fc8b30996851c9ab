package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, Event{Kind: KindHeadingStart, Level: 3}, HeadingStart(3))
	assert.Equal(t, Event{Kind: KindHeadingEnd, Level: 3}, HeadingEnd(3))
	assert.Equal(t, Event{Kind: KindText, Payload: "hi"}, Text("hi"))
	assert.Equal(t, Event{Kind: KindCode, Payload: "x := 1"}, Code("x := 1"))
	assert.Equal(t, Event{Kind: KindHTML, Payload: "<br>"}, HTML("<br>"))
	assert.Equal(t, Event{Kind: KindOther}, Other())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "HeadingStart", KindHeadingStart.String())
	assert.Equal(t, "Other", KindOther.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
