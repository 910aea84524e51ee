// Package summary 把奖项平铺列表归约成看板所需的聚合结果。
//
// 所有构建函数都是输入的纯函数：不访问内容库、不保留状态，
// 调用方必须在全部数据拉取成功后再调用。排序的并列项一律按 ID 升序，
// 保证同一批奖项以任意顺序输入得到相同输出。
package summary
