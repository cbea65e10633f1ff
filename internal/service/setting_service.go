package service

import (
	"fmt"
	"sort"

	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

type SettingService interface {
	GetAll() (map[string]string, error)
	// UpdateAll 按setting_key覆盖写入, 返回本次写入的键(有序)
	UpdateAll(settings map[string]interface{}) ([]string, error)
}

type settingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) GetAll() (map[string]string, error) {
	settings, err := s.settingRepo.ListAll()
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.SettingKey] = setting.SettingValue
	}
	return result, nil
}

func (s *settingService) UpdateAll(settings map[string]interface{}) ([]string, error) {
	if len(settings) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// 取值统一转为字符串存储
	rows := make([]*model.SystemSetting, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, &model.SystemSetting{
			SettingKey:   key,
			SettingValue: fmt.Sprintf("%v", settings[key]),
		})
	}

	if err := s.settingRepo.Upsert(rows); err != nil {
		return nil, err
	}
	return keys, nil
}
