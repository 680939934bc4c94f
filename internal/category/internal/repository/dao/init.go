// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(&Category{})
	if err != nil {
		return err
	}
	return seed(db)
}

// seed 写入默认分类，按 name 唯一索引去重，重复执行没有副作用
func seed(db *egorm.Component) error {
	now := time.Now().UnixMilli()
	defaults := []Category{
		{Name: "Bug Report", Description: "Report issues, errors, or unexpected behavior", Color: "#DC2626"},
		{Name: "Feature Request", Description: "Suggest new features or functionality", Color: "#059669"},
		{Name: "Improvement", Description: "Suggest enhancements to existing features", Color: "#2563EB"},
		{Name: "UI/UX", Description: "Feedback about user interface and experience", Color: "#7C3AED"},
		{Name: "Performance", Description: "Report performance issues or optimization suggestions", Color: "#EA580C"},
		{Name: "General", Description: "General feedback and suggestions", Color: "#6B7280"},
	}
	for i := range defaults {
		defaults[i].Active = true
		defaults[i].Ctime = now
		defaults[i].Utime = now
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error
}
