package msg

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
	zh_translation "github.com/go-playground/validator/v10/translations/zh"
)

var trans ut.Translator

func initTranslator(language string) error {
	//转换成go-playground的validator
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if ok {
		//创建翻译器
		zhT := zh.New()
		enT := en.New()

		//创建通用翻译器
		//第一个参数是备用语言，后面的是应当支持的语言
		uni := ut.New(enT, enT, zhT)

		//从通用翻译器中获取指定语言翻译器
		trans, ok = uni.GetTranslator(language)
		if !ok {
			return fmt.Errorf("not found translator %s", language)
		}

		//绑定到gin的验证器上，对binding的tag进行翻译
		switch language {
		case "zh":
			if err := zh_translation.RegisterDefaultTranslations(validate, trans); err != nil {
				return err
			}
		default:
			if err := en_translation.RegisterDefaultTranslations(validate, trans); err != nil {
				return err
			}
		}
	}

	return nil
}

// remove 去掉字段名中的结构体前缀，只保留字段本身
func remove(errors map[string]string) map[string]string {
	result := map[string]string{}
	for key, value := range errors {
		result[key[strings.Index(key, ".")+1:]] = value
	}
	return result
}

// TranslateBindingError 将binding校验错误翻译为按字段的错误信息
// 非校验类错误（如JSON语法错误）返回原始错误文本
func TranslateBindingError(bindErr error) map[string]string {
	if err := initTranslator("zh"); err != nil {
		return map[string]string{"error": bindErr.Error()}
	}

	if validationErrors, ok := bindErr.(validator.ValidationErrors); ok {
		return remove(validationErrors.Translate(trans))
	}

	return map[string]string{"error": bindErr.Error()}
}
