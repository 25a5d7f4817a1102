package log

import (
	"strings"
	"sync"
)

const channelSeparator = "."

// ChannelLevels holds the minimum priority of a logger and the priorities overriding it for single channels. A
// channel level applies to the channel itself and every channel below it, so a level for "Microsoft" also applies to
// "Microsoft.Hosting.Lifetime" unless "Microsoft.Hosting" has a level of its own.
type ChannelLevels struct {
	lck      sync.RWMutex
	level    int
	channels map[string]int
}

func NewChannelLevels(level int) *ChannelLevels {
	return &ChannelLevels{
		level:    level,
		channels: make(map[string]int),
	}
}

func (c *ChannelLevels) SetLevel(level int) {
	c.lck.Lock()
	defer c.lck.Unlock()

	c.level = level
}

func (c *ChannelLevels) SetChannelLevel(channel string, level int) {
	c.lck.Lock()
	defer c.lck.Unlock()

	c.channels[channel] = level
}

// Level returns the priority a message of the given channel needs at least to be logged.
func (c *ChannelLevels) Level(channel string) int {
	c.lck.RLock()
	defer c.lck.RUnlock()

	for name := channel; name != ""; name = parentChannel(name) {
		if level, ok := c.channels[name]; ok {
			return level
		}
	}

	return c.level
}

func (c *ChannelLevels) Enabled(channel string, level int) bool {
	return level >= c.Level(channel)
}

func parentChannel(channel string) string {
	i := strings.LastIndex(channel, channelSeparator)
	if i < 0 {
		return ""
	}

	return channel[:i]
}
