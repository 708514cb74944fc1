// Package i18n holds the UI message catalog. Chinese is the primary language;
// English is the fallback for missing keys.
package i18n

import (
	"fmt"
	"sync"
)

// Language codes
const (
	LangChinese = "zh"
	LangEnglish = "en"
	LangSystem  = "system"
)

// Localization manages UI text translations. It is read from the job worker
// and written from the UI thread, so access is synchronized.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyURLLabel        = "url_label"
	KeyEnterURL        = "enter_url"
	KeyOutputDirLabel  = "output_dir_label"
	KeyBrowse          = "browse"
	KeyFilenameLabel   = "filename_label"
	KeyRename          = "rename"
	KeyQualityLabel    = "quality_label"
	KeyKbps            = "kbps"
	KeyDownload        = "download"
	KeyReveal          = "reveal"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyQuit            = "quit"
	KeyNotice          = "notice"
	KeyError           = "error"
	KeySuccess         = "success"
	KeyMissingTools    = "missing_tools"
	KeyErrorOpeningDir = "error_opening_dir"

	KeyPleaseEnterURL   = "please_enter_url"
	KeyPleaseChooseDir  = "please_choose_dir"
	KeyInvalidQuality   = "invalid_quality"
	KeyJobInFlight      = "job_in_flight"
	KeyStarting         = "starting"
	KeyExecuting        = "executing"
	KeyCallingTool      = "calling_tool"
	KeyExecutionFailed  = "execution_failed"
	KeyExitCode         = "exit_code"
	KeyLocating         = "locating"
	KeyNoArtifact       = "no_artifact"
	KeyTags             = "tags"
	KeyRenaming         = "renaming"
	KeyRenamedTo        = "renamed_to"
	KeyRenameFailed     = "rename_failed"
	KeyCompleted        = "completed"
	KeyCompletedFile    = "completed_file"
	KeyUnexpectedError  = "unexpected_error"
	KeyNothingToRename  = "nothing_to_rename"
	KeyPleaseEnterName  = "please_enter_name"
	KeyTargetExists     = "target_exists"
	KeyArtifactVanished = "artifact_vanished"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangChinese,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		lang = LangChinese
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if text, found := l.texts[LangEnglish][key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangChinese: "中文",
		LangEnglish: "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangChinese] = map[string]string{
		KeyAppTitle:        "YouTube 视频下载与音频提取工具",
		KeyURLLabel:        "YouTube视频链接:",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyOutputDirLabel:  "保存目录:",
		KeyBrowse:          "选择",
		KeyFilenameLabel:   "文件名:",
		KeyRename:          "重命名",
		KeyQualityLabel:    "MP3音质:",
		KeyKbps:            "kbps",
		KeyDownload:        "下载并提取MP3",
		KeyReveal:          "打开所在目录",
		KeyFile:            "文件",
		KeyLanguage:        "语言",
		KeyQuit:            "退出",
		KeyNotice:          "提示",
		KeyError:           "错误",
		KeySuccess:         "成功",
		KeyMissingTools:    "请将yt-dlp和ffmpeg放在本程序同一目录下！",
		KeyErrorOpeningDir: "无法打开目录",

		KeyPleaseEnterURL:   "请填写YouTube视频链接！",
		KeyPleaseChooseDir:  "请选择保存目录！",
		KeyInvalidQuality:   "不支持的音质！",
		KeyJobInFlight:      "已有任务正在进行！",
		KeyStarting:         "开始下载...",
		KeyExecuting:        "正在下载并提取MP3...",
		KeyCallingTool:      "正在调用yt-dlp下载并提取MP3...",
		KeyExecutionFailed:  "下载或提取MP3失败！",
		KeyExitCode:         "退出码：%d",
		KeyLocating:         "正在查找生成的MP3文件...",
		KeyNoArtifact:       "未找到生成的MP3文件！",
		KeyTags:             "标签：%s - %s",
		KeyRenaming:         "正在重命名...",
		KeyRenamedTo:        "文件已重命名为：%s",
		KeyRenameFailed:     "重命名失败：%v",
		KeyCompleted:        "完成！MP3已保存。",
		KeyCompletedFile:    "完成！MP3文件：%s",
		KeyUnexpectedError:  "出错：%v",
		KeyNothingToRename:  "没有可重命名的文件！",
		KeyPleaseEnterName:  "请输入新的文件名！",
		KeyTargetExists:     "目标文件名已存在！",
		KeyArtifactVanished: "文件已被移动或删除：%s",
	}

	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:        "YouTube Video Download & Audio Extractor",
		KeyURLLabel:        "YouTube URL:",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyOutputDirLabel:  "Save to:",
		KeyBrowse:          "Browse",
		KeyFilenameLabel:   "Filename:",
		KeyRename:          "Rename",
		KeyQualityLabel:    "MP3 quality:",
		KeyKbps:            "kbps",
		KeyDownload:        "Download & extract MP3",
		KeyReveal:          "Show in folder",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyQuit:            "Quit",
		KeyNotice:          "Notice",
		KeyError:           "Error",
		KeySuccess:         "Success",
		KeyMissingTools:    "Place yt-dlp and ffmpeg in the same directory as this program!",
		KeyErrorOpeningDir: "Cannot open folder",

		KeyPleaseEnterURL:   "Please enter a YouTube URL!",
		KeyPleaseChooseDir:  "Please choose a save directory!",
		KeyInvalidQuality:   "Unsupported quality!",
		KeyJobInFlight:      "A job is already running!",
		KeyStarting:         "Starting download...",
		KeyExecuting:        "Downloading and extracting MP3...",
		KeyCallingTool:      "Calling yt-dlp to download and extract MP3...",
		KeyExecutionFailed:  "Download or MP3 extraction failed!",
		KeyExitCode:         "exit code: %d",
		KeyLocating:         "Looking for the produced MP3...",
		KeyNoArtifact:       "No MP3 file was produced!",
		KeyTags:             "Tags: %s - %s",
		KeyRenaming:         "Renaming...",
		KeyRenamedTo:        "File renamed to: %s",
		KeyRenameFailed:     "Rename failed: %v",
		KeyCompleted:        "Done! MP3 saved.",
		KeyCompletedFile:    "Done! MP3 file: %s",
		KeyUnexpectedError:  "Error: %v",
		KeyNothingToRename:  "There is no file to rename!",
		KeyPleaseEnterName:  "Please enter a new filename!",
		KeyTargetExists:     "The target filename already exists!",
		KeyArtifactVanished: "File was moved or deleted: %s",
	}
}
