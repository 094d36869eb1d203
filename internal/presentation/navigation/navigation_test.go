package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_UpdateScreenState(t *testing.T) {
	n := NewNavigator(Home)
	sub := n.Subscribe()
	defer sub.Unsubscribe()

	assert.Equal(t, Home, <-sub.C())

	n.UpdateScreenState(NewsDetail)
	assert.Equal(t, NewsDetail, n.Current())
	assert.Equal(t, NewsDetail, <-sub.C())
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "news-detail", NewsDetail.String())
	assert.Equal(t, "unknown", Screen(42).String())
}
