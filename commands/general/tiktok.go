package general

import (
	"bytes"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-resty/resty/v2"

	"ArcadiaBot/bot"
)

// tikwm is a free TikTok scraper API that returns a watermark-free
// download link.
const tikwmEndpoint = "https://www.tikwm.com/api/"

// Discord rejects attachments over the default upload limit.
const maxVideoBytes = 8 * 1024 * 1024

var tiktokURLPattern = regexp.MustCompile(`^https?://((www|vm|vt|m)\.)?tiktok\.com/\S+$`)

var tiktokClient = resty.New().
	SetTimeout(30 * time.Second).
	SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

type tikwmResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Play   string `json:"play"`
		Title  string `json:"title"`
		Size   int64  `json:"size"`
		Author struct {
			Nickname string `json:"nickname"`
		} `json:"author"`
	} `json:"data"`
}

func TikTok(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		return // Don't respond to DMs
	}
	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: $tiktok <link>")
		return
	}
	link := args[1]
	if !tiktokURLPattern.MatchString(link) {
		s.ChannelMessageSend(m.ChannelID, "❌ That doesn't look like a TikTok link.")
		return
	}

	s.ChannelTyping(m.ChannelID)

	var meta tikwmResponse
	resp, err := tiktokClient.R().
		SetQueryParam("url", link).
		SetResult(&meta).
		Get(tikwmEndpoint)
	if err != nil {
		log.Printf("Error fetching tiktok metadata: %v", err)
		s.ChannelMessageSend(m.ChannelID, "❌ Couldn't reach the downloader. Try again later.")
		return
	}
	if resp.IsError() || meta.Code != 0 || meta.Data.Play == "" {
		log.Printf("tikwm rejected %s: code=%d msg=%s", link, meta.Code, meta.Msg)
		s.ChannelMessageSend(m.ChannelID, "❌ Couldn't fetch that video. It may be private or removed.")
		return
	}
	if meta.Data.Size > maxVideoBytes {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ That video is too big to attach (%.1f MB). Direct link: %s",
			float64(meta.Data.Size)/(1024*1024), meta.Data.Play))
		return
	}

	video, err := tiktokClient.R().Get(meta.Data.Play)
	if err != nil || video.IsError() {
		log.Printf("Error downloading tiktok video: %v", err)
		s.ChannelMessageSend(m.ChannelID, "❌ The download failed partway. Try again later.")
		return
	}
	body := video.Body()
	if len(body) > maxVideoBytes {
		s.ChannelMessageSend(m.ChannelID, "❌ That video is too big to attach. Direct link: "+meta.Data.Play)
		return
	}

	caption := meta.Data.Title
	if meta.Data.Author.Nickname != "" {
		caption = fmt.Sprintf("**%s**\n%s", meta.Data.Author.Nickname, meta.Data.Title)
	}
	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: caption,
		Files: []*discordgo.File{
			{
				Name:        "tiktok.mp4",
				ContentType: "video/mp4",
				Reader:      bytes.NewReader(body),
			},
		},
	})
	if err != nil {
		log.Printf("Error attaching tiktok video: %v", err)
		s.ChannelMessageSend(m.ChannelID, "❌ Couldn't attach the video. Direct link: "+meta.Data.Play)
	}
}
