package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/matchup/pkg/model"
)

// Emojis maps type names to custom emojis uploaded to a resource guild.
type Emojis map[string]*discordgo.Emoji

// Add registers emojis by name. Commands built from the same map see the
// additions.
func (emojis Emojis) Add(list ...*discordgo.Emoji) {
	for _, emoji := range list {
		emojis[emoji.Name] = emoji
	}
}

// Label renders typ with its emoji when one is registered and as its plain
// localized name otherwise.
func (emojis Emojis) Label(typ model.Type) string {
	emoji, ok := emojis[typ.String()]
	if !ok {
		return typ.LocalizedName()
	}

	return fmt.Sprintf("<:%v:%v> %s", emoji.Name, emoji.ID, typ.LocalizedName())
}
