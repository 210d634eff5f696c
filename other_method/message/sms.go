package message

import (
	"fmt"

	"nextjs_to_go/config"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v5/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
)

// CreateClient 创建短信客户端，凭证从环境变量配置读取
func CreateClient() (_result *dysmsapi20170525.Client, _err error) {
	appConfig := config.LoadConfig()

	smsConfig := &openapi.Config{
		AccessKeyId:     tea.String(appConfig.SMSConfig.AccessKeyID),
		AccessKeySecret: tea.String(appConfig.SMSConfig.AccessKeySecret),
	}
	// Endpoint 请参考 https://api.aliyun.com/product/Dysmsapi
	smsConfig.Endpoint = tea.String("dysmsapi.aliyuncs.com")
	_result, _err = dysmsapi20170525.NewClient(smsConfig)
	return _result, _err
}

// sendTemplateSms 发送模板短信
func sendTemplateSms(phoneNumber string, templateCode string, templateParam string) (*string, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, fmt.Errorf("创建客户端失败: %v", err)
	}

	appConfig := config.LoadConfig()

	sendSmsRequest := &dysmsapi20170525.SendSmsRequest{
		PhoneNumbers:  tea.String(phoneNumber),
		SignName:      tea.String(appConfig.SMSConfig.SignName),
		TemplateCode:  tea.String(templateCode),
		TemplateParam: tea.String(templateParam),
	}
	runtime := &util.RuntimeOptions{}

	resp, err := client.SendSmsWithOptions(sendSmsRequest, runtime)
	if err != nil {
		// 处理错误
		var sdkErr = &tea.SDKError{}
		if _t, ok := err.(*tea.SDKError); ok {
			sdkErr = _t
		} else {
			sdkErr.Message = tea.String(err.Error())
		}
		return nil, fmt.Errorf("发送短信失败: %s", tea.StringValue(sdkErr.Message))
	}

	return util.ToJSONString(resp), nil
}

// SendSms 发送短信验证码，只需传递手机号和验证码
func SendSms(phoneNumber string, code string) (*string, error) {
	appConfig := config.LoadConfig()
	return sendTemplateSms(phoneNumber, appConfig.SMSConfig.TemplateCode, fmt.Sprintf("{\"code\":\"%s\"}", code))
}

// SendOrderShippedSms 订单发货后给买家发送发货通知短信
func SendOrderShippedSms(phoneNumber string, orderID string) (*string, error) {
	appConfig := config.LoadConfig()
	return sendTemplateSms(phoneNumber, appConfig.SMSConfig.ShippedTemplateCode, fmt.Sprintf("{\"order_id\":\"%s\"}", orderID))
}
