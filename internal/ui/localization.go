package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/google-login/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyLoginDelay    = "login_delay"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"

	KeyPermissionTitle   = "permission_title"
	KeyPermissionMessage = "permission_message"
	KeyImageErrorTitle   = "image_error_title"
	KeyImageErrorMessage = "image_error_message"
	KeyImageNeededTitle  = "image_needed_title"
	KeyImageNeededMsg    = "image_needed_message"
	KeyAppleTitle        = "apple_title"
	KeyAppleMessage      = "apple_message"
	KeySignUpTitle       = "signup_title"
	KeySignUpMessage     = "signup_message"
)

var noticeKeys = map[model.NoticeKind][2]string{
	model.NoticePermissionDenied: {KeyPermissionTitle, KeyPermissionMessage},
	model.NoticeImageSaveFailed:  {KeyImageErrorTitle, KeyImageErrorMessage},
	model.NoticeImageRequired:    {KeyImageNeededTitle, KeyImageNeededMsg},
	model.NoticeAppleTapped:      {KeyAppleTitle, KeyAppleMessage},
	model.NoticeSignUpTapped:     {KeySignUpTitle, KeySignUpMessage},
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" follows the device locale
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	} else {
		l.currentLanguage = "en"
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Notice returns the title and message for a notice kind
func (l *Localization) Notice(kind model.NoticeKind) (string, string) {
	keys, ok := noticeKeys[kind]
	if !ok {
		return l.GetText(KeyAppTitle), kind.String()
	}
	return l.GetText(keys[0]), l.GetText(keys[1])
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage returns the two-letter code of the device locale
func systemLanguage() string {
	code := lang.SystemLocale().LanguageString()
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Sign in",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyLoginDelay:        "Login delay (ms)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyPermissionTitle:   "Permission required",
		KeyPermissionMessage: "Allow access to your photos to choose an image.",
		KeyImageErrorTitle:   "Error",
		KeyImageErrorMessage: "Could not save the selected image.",
		KeyImageNeededTitle:  "Choose an image",
		KeyImageNeededMsg:    "First tap \"Continue with Google\" and pick an image.",
		KeyAppleTitle:        "Apple",
		KeyAppleMessage:      "Continue with Apple tapped.",
		KeySignUpTitle:       "Sign up",
		KeySignUpMessage:     "Sign up tapped.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Вход",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyLoginDelay:        "Задержка входа (мс)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyPermissionTitle:   "Нужно разрешение",
		KeyPermissionMessage: "Разрешите доступ к фото, чтобы выбрать изображение.",
		KeyImageErrorTitle:   "Ошибка",
		KeyImageErrorMessage: "Не удалось сохранить выбранное изображение.",
		KeyImageNeededTitle:  "Выберите изображение",
		KeyImageNeededMsg:    "Сначала нажмите «Continue with Google» и выберите изображение.",
		KeyAppleTitle:        "Apple",
		KeyAppleMessage:      "Нажата кнопка «Continue with Apple».",
		KeySignUpTitle:       "Регистрация",
		KeySignUpMessage:     "Нажата кнопка «Sign up».",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Entrar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyLoginDelay:        "Atraso do login (ms)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyPermissionTitle:   "Permissão necessária",
		KeyPermissionMessage: "Permita o acesso às fotos para escolher uma imagem.",
		KeyImageErrorTitle:   "Erro",
		KeyImageErrorMessage: "Não foi possível salvar a imagem selecionada.",
		KeyImageNeededTitle:  "Escolha uma imagem",
		KeyImageNeededMsg:    "Primeiro toque em \"Continue with Google\" e escolha uma imagem.",
		KeyAppleTitle:        "Apple",
		KeyAppleMessage:      "Continue with Apple tocado.",
		KeySignUpTitle:       "Cadastro",
		KeySignUpMessage:     "Sign up tocado.",
	}
}
