package service

const (
	msgNoGuild     = "Miku only works inside a server / サーバー内でのみ使えます。"
	msgNotOwner    = "🔒 Only Miku's owner can use this command / オーナー専用のコマンドです。"
	msgNotAllowed  = "Miku can't run here yet. See: %s / このサーバーでは利用できません。"
	msgInactive    = "Miku is not active here yet. Use /activelogger #channel. / まだ有効ではありません。/activelogger #channel で有効化してください。"
	msgUsageEnable = "Usage: /activelogger #channel / 使い方: /activelogger #channel"
	msgNotText     = "Miku needs a text channel from this server / このサーバーのテキストチャンネルを指定してください。"
	msgEnabled     = "Miku is online! Logging enabled at %s / ミク起動! ログを有効化しました。"
	msgDisabled    = "Miku is taking a nap. Logging disabled / ミクおやすみ。ログを無効化しました。"
	msgNoChannel   = "Miku can't find the log channel yet / ログチャンネル未設定です。"
	msgStatus      = "Log channel: %s. Status: %s."
	msgLastJoin    = "Last join / 最終参加 of %s: %s"
	msgLastOut     = "Last leave / 最終退出 of %s: %s"

	// MsgFailure es la respuesta genérica cuando falla la base
	MsgFailure = "⚠️ Miku couldn't reach her notes, try again later / エラーが発生しました。しばらくしてから再試行してください。"
)
